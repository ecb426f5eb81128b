package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App        *App        `json:"app" yaml:"app"`
	Server     *Server     `json:"server" yaml:"server"`
	MySQL      *MySQL      `json:"mysql" yaml:"mysql"`
	Redis      *Redis      `json:"redis" yaml:"redis"`
	Jwt        *Jwt        `json:"jwt" yaml:"jwt"`
	Limiter    *Limiter    `json:"limiter" yaml:"limiter"`
	Engagement *Engagement `json:"engagement" yaml:"engagement"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// New reads the yaml file and panics when it is missing or malformed.
func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("parse %s: %v", filename, err))
	}
	return conf
}

// Parse decodes yaml content and fills unset sections with defaults.
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}
	conf.applyDefaults()
	return &conf, nil
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.MySQL == nil {
		c.MySQL = &MySQL{}
	}
	c.MySQL.applyDefaults()
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Jwt.Expire == 0 {
		c.Jwt.Expire = 7 * 24 * time.Hour
	}
	if c.Limiter == nil {
		c.Limiter = &Limiter{}
	}
	c.Limiter.applyDefaults()
	if c.Engagement == nil {
		c.Engagement = &Engagement{}
	}
	if c.Engagement.ViewWindow == 0 {
		c.Engagement.ViewWindow = 30 * time.Minute
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
