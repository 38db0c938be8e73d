package config

import (
	"time"

	"github.com/spf13/viper"
)

// Data represents the data configuration
type Data struct {
	MongoDB *MongoDB `json:"mongodb" yaml:"mongodb"`
}

// MongoDB mongodb config struct
type MongoDB struct {
	URI            string        `json:"uri" yaml:"uri"`
	TestURI        string        `json:"test_uri" yaml:"test_uri"`
	Database       string        `json:"database" yaml:"database"` // overrides the database in URI
	Collection     string        `json:"collection" yaml:"collection"`
	ConnectTimeout time.Duration `json:"connect_timeout" yaml:"connect_timeout"`
}

func getDataConfig(v *viper.Viper) *Data {
	return &Data{
		MongoDB: &MongoDB{
			URI:            v.GetString("data.mongodb.uri"),
			TestURI:        v.GetString("data.mongodb.test_uri"),
			Database:       v.GetString("data.mongodb.database"),
			Collection:     v.GetString("data.mongodb.collection"),
			ConnectTimeout: getDurationOrDefault(v, "data.mongodb.connect_timeout", 10*time.Second),
		},
	}
}

// ForTest returns a copy pointed at the test database.
func (m *MongoDB) ForTest() *MongoDB {
	c := *m
	c.URI = m.TestURI
	c.Database = ""
	return &c
}
