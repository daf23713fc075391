package config

// RoutingConfig contains journey timing defaults
type RoutingConfig struct {
	BusWaitTime int     `yaml:"bus_wait_time" validate:"gte=1,lte=1000"` // minutes
	BusVelocity float64 `yaml:"bus_velocity" validate:"gt=0,lte=1000"`   // km/h
}

// RouterConfig contains shortest-path engine tuning
type RouterConfig struct {
	CacheSize int `yaml:"cache_size" validate:"gt=0"`
}

// GTFSConfig contains GTFS static feed import configuration
type GTFSConfig struct {
	Path         string  `yaml:"path" validate:"omitempty"`
	CachePath    string  `yaml:"cache_path" validate:"omitempty"` // gob cache of the parsed feed
	DistanceUnit float64 `yaml:"distance_unit" validate:"gt=0"`   // meters per shape_dist_traveled unit
}

// AppConfig is the root configuration structure
type AppConfig struct {
	LogLevel string        `yaml:"log_level" validate:"oneof=debug info warn error"`
	Routing  RoutingConfig `yaml:"routing"`
	Router   RouterConfig  `yaml:"router"`
	GTFS     GTFSConfig    `yaml:"gtfs"`
}
