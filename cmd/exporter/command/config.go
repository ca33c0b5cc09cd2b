package command

import (
	"github.com/pixil98/go-errors"
)

type Config struct {
	Storage StorageConfig `json:"storage"`
	Nats    NatsConfig    `json:"nats"`
	Cache   CacheConfig   `json:"cache"`
	Export  ExportConfig  `json:"export"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Storage.validate())
	el.Add(c.Nats.validate())
	el.Add(c.Cache.validate())
	el.Add(c.Export.validate())

	return el.Err()
}
