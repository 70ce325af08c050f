package config

const (
	defaultDataDir           = "~/.local/share/filmvault"
	defaultLogDir            = "~/.local/share/filmvault/logs"
	defaultVisionBaseURL     = "https://vision.googleapis.com/v1"
	defaultVisionTimeoutSec  = 30
	defaultTMDBBaseURL       = "https://api.themoviedb.org/3"
	defaultTMDBLanguage      = "en-US"
	defaultTMDBTimeoutSec    = 10
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultAutoDetect        = true
	defaultMaxCandidates     = 5
	maxCandidatesUpperBound  = 10
	minServiceTimeoutSeconds = 1
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Vision: Vision{
			BaseURL:    defaultVisionBaseURL,
			TimeoutSec: defaultVisionTimeoutSec,
		},
		TMDB: TMDB{
			BaseURL:    defaultTMDBBaseURL,
			Language:   defaultTMDBLanguage,
			TimeoutSec: defaultTMDBTimeoutSec,
		},
		Scanner: Scanner{
			AutoDetect:    defaultAutoDetect,
			MaxCandidates: defaultMaxCandidates,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
