package cmd

import (
	"github.com/bindersmedia/commitcount/configs"
	"github.com/bindersmedia/commitcount/controller"
)

type Handler struct {
	opts *configs.Options
	ctrl *controller.Controller
}

// New returns a handler whose configuration is loaded on first use, after flags are parsed.
func New(opts *configs.Options) *Handler {
	return &Handler{
		opts: opts,
	}
}

func (h *Handler) controller() (*controller.Controller, error) {
	if h.ctrl != nil {
		return h.ctrl, nil
	}
	cfg, err := configs.New(h.opts)
	if err != nil {
		return nil, err
	}
	h.ctrl = controller.New(cfg)
	return h.ctrl, nil
}
