package config

import (
	"time"

	"KasumiAI/app/common/token"
)

// AuthConf is shared by every API service that sits behind the auth middleware.
type AuthConf struct {
	AccessSecret  string
	AccessExpire  time.Duration `json:",default=2h"`
	RefreshSecret string
	RefreshExpire time.Duration `json:",default=168h"`
}

func (c AuthConf) TokenConf() token.Conf {
	return token.Conf{
		AccessSecret:  c.AccessSecret,
		AccessExpire:  c.AccessExpire,
		RefreshSecret: c.RefreshSecret,
		RefreshExpire: c.RefreshExpire,
	}
}
