package utils

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

type equipment struct {
	Name              string  `mapstructure:"Name"`
	Mean              float64 `mapstructure:"Mean"`
	StandardDeviation float64 `mapstructure:"StandardDeviation"`
}

type Config struct {
	NamespaceURI                    string      `mapstructure:"NAMESPACE_URI"`
	LogLevel                        string      `mapstructure:"LOG_LEVEL"`
	SET_DELAY_BETWEEN_UPDATES       int         `mapstructure:"SET_DELAY_BETWEEN_UPDATES"`
	RANDOMIZE_DELAY_BETWEEN_UPDATES bool        `mapstructure:"RANDOMIZE_DELAY_BETWEEN_UPDATES"`
	EquipmentParams                 []equipment `mapstructure:"EQUIPMENT"`
}

func GetConfig() Config {
	v := viper.New()
	var config Config

	v.SetConfigName("config")    // name of config file (without extension)
	v.SetConfigType("json")      // REQUIRED if the config file does not have the extension in the name
	v.AddConfigPath("./configs") // look for config in the working directory

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; ignore error if desired
			log.Println(Colorize("Config file not found! using default configs..", Yellow))
			setDefault(v)
		} else {
			log.Println(Colorize("Config file was found but another error was produced : ", Red))
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	} else {
		log.Println(Colorize("Config file found and successfully parsed", Green))
	}

	err := v.Unmarshal(&config)
	if err != nil {
		panic(fmt.Errorf("unable to decode into struct %w", err))
	}

	return config
}

func setDefault(v *viper.Viper) {
	v.SetDefault("NAMESPACE_URI", "http://github.com/amine-amaach/uaspace/plant")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SET_DELAY_BETWEEN_UPDATES", 5)
	v.SetDefault("RANDOMIZE_DELAY_BETWEEN_UPDATES", true)
	v.SetDefault("EQUIPMENT", []equipment{
		{
			Name:              "Boiler",
			Mean:              85.0,
			StandardDeviation: 5.0,
		},
		{
			Name:              "Pump",
			Mean:              40.0,
			StandardDeviation: 7.0,
		},
		{
			Name:              "Compressor",
			Mean:              13.0,
			StandardDeviation: 3.0,
		},
	})
}
