package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL,required,notEmpty"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// PublicBaseURL is where providers reach this service (return and webhook URLs).
	PublicBaseURL string `env:"PUBLIC_BASE_URL,required,notEmpty"`
	// StorefrontURL hosts the checkout success, error and status pages.
	StorefrontURL string `env:"STOREFRONT_URL,required,notEmpty"`

	ProviderHTTPTimeout time.Duration `env:"PROVIDER_HTTP_TIMEOUT" envDefault:"20s"`
	InitDedup           bool          `env:"INIT_DEDUP" envDefault:"true"`

	Ameriabank AmeriabankConfig `envPrefix:"AMERIABANK_"`
	Arca       ArcaConfig       `envPrefix:"ARCA_"`
	Idram      IdramConfig      `envPrefix:"IDRAM_"`
	Telcell    TelcellConfig    `envPrefix:"TELCELL_"`

	// Settled events go to Kafka when brokers are set, otherwise to RabbitMQ when
	// AMQP_URL is set. With neither they are only logged.
	KafkaBrokers       []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaPaymentsTopic string   `env:"KAFKA_PAYMENTS_TOPIC" envDefault:"payments.settled"`
	AMQPURL            string   `env:"AMQP_URL"`
	AMQPExchange       string   `env:"AMQP_EXCHANGE" envDefault:"payments"`

	// Settled events are also indexed for support search when OpenSearch is set.
	OpenSearchURLs            []string `env:"OPENSEARCH_URLS" envSeparator:","`
	OpenSearchSettlementIndex string   `env:"OPENSEARCH_SETTLEMENT_INDEX" envDefault:"payment-settlements"`
}

type AmeriabankConfig struct {
	BaseURL  string `env:"BASE_URL" envDefault:"https://services.ameriabank.am/VPOS"`
	ClientID string `env:"CLIENT_ID"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

type ArcaConfig struct {
	BaseURL  string `env:"BASE_URL" envDefault:"https://ipay.arca.am/payment/rest"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

type IdramConfig struct {
	FormURL    string `env:"FORM_URL" envDefault:"https://banking.idram.am/Payment/GetPayment"`
	RecAccount string `env:"REC_ACCOUNT"`
	SecretKey  string `env:"SECRET_KEY"`
	Email      string `env:"EMAIL"`
}

type TelcellConfig struct {
	BaseURL   string `env:"BASE_URL" envDefault:"https://telcellmoney.am/invoices"`
	ShopID    string `env:"SHOP_ID"`
	ShopKey   string `env:"SHOP_KEY"`
	ValidDays int    `env:"VALID_DAYS" envDefault:"1"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
