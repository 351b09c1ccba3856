package config

import "github.com/namsral/flag"

type Config struct {
	BoardWidth      int
	BoardHeight     int
	GuaranteedDeals bool
	Seed            int64
	Debug           bool
}

func DefaultConfig() *Config {
	return &Config{
		BoardWidth:      8,
		BoardHeight:     8,
		GuaranteedDeals: true,
	}
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("blockblast", flag.ContinueOnError)
	fs.IntVar(&c.BoardWidth, "board-width", 8, "board width in cells, at most 64")
	fs.IntVar(&c.BoardHeight, "board-height", 8, "board height in cells, at most 64")
	fs.BoolVar(&c.GuaranteedDeals, "guaranteed-deals", true, "only deal piece sets with a provable placement sequence")
	fs.Int64Var(&c.Seed, "seed", 0, "random seed for reproducible sessions; 0 seeds from crypto/rand")
	fs.BoolVar(&c.Debug, "debug", false, "enable debug logging")
	err := fs.Parse(args)
	return err
}
