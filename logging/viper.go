package logging

import (
	"github.com/spf13/viper"
)

const (
	// ViperKey is the configuration subtree this package reads its Options from.
	ViperKey = "logging"
)

// NewOptions unmarshals an Options from the ViperKey subtree of the supplied
// Viper instance.  A nil Viper, or one without the subtree, yields default
// Options rather than an error, so callers can treat configuration as optional.
func NewOptions(v *viper.Viper) (*Options, error) {
	o := new(Options)
	if v == nil {
		return o, nil
	}

	if sub := v.Sub(ViperKey); sub != nil {
		if err := sub.Unmarshal(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}
