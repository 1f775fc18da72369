package configs

// Redis configures the session store. An empty Addr keeps sessions in
// process memory, which only suits a single instance.
type Redis struct {
	Addr     string `env:"ADDRESS"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}
