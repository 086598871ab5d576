package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Session cookie holding the visitor's last assessment inputs.
	// State is per browser session only; nothing is persisted server-side.
	SessionCookieName string `envconfig:"SESSION_COOKIE_NAME" default:"glasses_session"`
	SessionMaxAgeSec  int    `envconfig:"SESSION_MAX_AGE_SEC" default:"3600"`

	// Cookie encryption keys (base64 encoded)
	// openssl rand -base64 32
	// to generate values; random keys are generated at boot when unset.
	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes

	// Image fetching is off by default; the resolver builds URLs without
	// any network traffic.
	ImageFetchEnabled    bool `envconfig:"IMAGE_FETCH_ENABLED" default:"false"`
	ImageFetchTimeoutSec uint `envconfig:"IMAGE_FETCH_TIMEOUT_SEC" default:"5"`
}
