package middleware

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type MiddlewareConfig struct {
	Log    *logrus.Logger
	Config *viper.Viper
}

type Middleware struct {
	Log    *logrus.Logger
	Config *viper.Viper

	jwtSecret []byte
}

func NewMiddleware(c *MiddlewareConfig) *Middleware {
	if c == nil {
		return &Middleware{}
	}

	m := &Middleware{
		Log:    c.Log,
		Config: c.Config,
	}
	if c.Config != nil {
		m.jwtSecret = []byte(c.Config.GetString("auth.jwt_secret"))
	}
	return m
}
