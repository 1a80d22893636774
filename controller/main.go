package controller

import (
	"time"

	"github.com/google/go-github/github"

	"github.com/bindersmedia/commitcount/configs"
)

type Controller struct {
	cfg   *configs.Configs
	ghc   *github.Client
	sleep func(time.Duration)
}

func New(cfg *configs.Configs) *Controller {
	return &Controller{
		cfg:   cfg,
		ghc:   github.NewClient(nil),
		sleep: time.Sleep,
	}
}

func (c *Controller) Configs() *configs.Configs {
	return c.cfg
}
