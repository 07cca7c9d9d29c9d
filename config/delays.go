package config

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Delays paces the opponent so a person can follow it. All values are
// milliseconds.
type Delays struct {
	AIThink         uint32 `yaml:"aiThink"`
	AIStart         uint32 `yaml:"aiStart"`
	AIPlayAgain     uint32 `yaml:"aiPlayAgain"`
	AIDrawnCardPlay uint32 `yaml:"aiDrawnCardPlay"`
	DrawnNoPlay     uint32 `yaml:"drawnNoPlay"`
	Counting        uint32 `yaml:"counting"`
	CountReveal     uint32 `yaml:"countReveal"`
}

func DefaultDelays() Delays {
	return Delays{
		AIThink:         1000,
		AIStart:         1200,
		AIPlayAgain:     1000,
		AIDrawnCardPlay: 800,
		DrawnNoPlay:     1000,
		Counting:        1500,
		CountReveal:     3500,
	}
}

// ParseDelayConfig reads a YAML delays file. Keys missing from the file
// keep their default.
func ParseDelayConfig(delaysFile string) (Delays, error) {
	bytes, err := ioutil.ReadFile(delaysFile)
	if err != nil {
		return Delays{}, errors.Wrap(err, fmt.Sprintf("Error reading delay config file [%s]", delaysFile))
	}

	data := DefaultDelays()
	err = yaml.Unmarshal(bytes, &data)
	if err != nil {
		return Delays{}, errors.Wrap(err, fmt.Sprintf("Error parsing delays YAML file [%s]", delaysFile))
	}

	return data, nil
}

// Millis converts a delay to a duration
func Millis(ms uint32) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
