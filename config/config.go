package config

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes one settlement batch.
type Config struct {
	Input  string
	Output string
}

// ConfigTmp mirrors Config for yaml decoding.
type ConfigTmp struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output,omitempty"`
}

// Get builds batch configs from the command line. With -config it reads a
// yaml list of batches, otherwise the positional argument is the input file
// and -output (stdout when empty) is the destination.
func Get() ([]Config, error) {
	configPath := flag.String("config", "", "path to yaml config with a list of batches")
	output := flag.String("output", "", "path to write snapshots to, empty means stdout")
	flag.Parse()

	if *configPath != "" {
		return getYaml(*configPath)
	}

	input := flag.Arg(0)
	if input == "" {
		return nil, fmt.Errorf("no input file: pass a transactions csv path or use -config")
	}

	return []Config{{Input: input, Output: *output}}, nil
}

func getYaml(path string) ([]Config, error) {
	var configsTmp []ConfigTmp
	var configs []Config

	f, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(f, &configsTmp); err != nil {
		return nil, err
	}

	for i, c := range configsTmp {
		if c.Input == "" {
			return nil, fmt.Errorf("incorrect 'input' param in yaml config: batch %d has no input file", i)
		}
		// batches run concurrently, so stdout cannot be shared
		if len(configsTmp) > 1 && c.Output == "" {
			return nil, fmt.Errorf("incorrect 'output' param in yaml config: batch %d needs its own output file", i)
		}

		configs = append(configs, Config{Input: c.Input, Output: c.Output})
	}
	return configs, nil
}
