package config

import (
	"fmt"
	"github.com/caarlos0/env/v8"
)

const AppName = "referral_backend"

var Config struct {
	Mode  string `env:"MODE" envDefault:"dev"`
	Debug bool   `env:"DEBUG" envDefault:"false"`
	Port  int    `env:"PORT" envDefault:"5000"`
	DbUrl string `env:"DB_URL"` // mysql dsn or postgres://... url

	// sending email config
	MailTransport string `env:"MAIL_TRANSPORT" envDefault:"smtp"` // one of smtp, ses or log
	MailHost      string `env:"MAIL_HOST" envDefault:"smtp.gmail.com"`
	MailPort      int    `env:"MAIL_PORT" envDefault:"587"`
	MailUsername  string `env:"MAIL_USERNAME"`
	MailPassword  string `env:"MAIL_PASSWORD"`
	MailFrom      string `env:"MAIL_FROM"`

	// tencent cloud ses, used when MAIL_TRANSPORT=ses
	TencentSecretID  string `env:"SECRET_ID"`
	TencentSecretKey string `env:"SECRET_KEY"`
	SesRegion        string `env:"SES_REGION" envDefault:"ap-hongkong"`

	// submissions per second across the process, 0 disables the limiter
	ReferralRateLimit float64 `env:"REFERRAL_RATE_LIMIT" envDefault:"0"`
	ReferralRateBurst int     `env:"REFERRAL_RATE_BURST" envDefault:"10"`
}

func InitConfig() {
	var err error
	if err = env.Parse(&Config); err != nil {
		panic(err)
	}
	if Config.MailFrom == "" {
		Config.MailFrom = Config.MailUsername
	}
	fmt.Printf("%+v\n", redacted())
}

// redacted returns a copy of Config without credentials, for the startup print
func redacted() any {
	c := Config
	if c.MailPassword != "" {
		c.MailPassword = "******"
	}
	if c.TencentSecretKey != "" {
		c.TencentSecretKey = "******"
	}
	return c
}
