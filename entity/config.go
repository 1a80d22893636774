package entity

import "time"

type RemoteConfig struct {
	APIURL     string
	Repository string
	PageLen    int
	Timeout    time.Duration
}

type CounterConfig struct {
	MaxPages int
	Delay    time.Duration
	Verbose  bool
}
