package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPPort       int           `env:"HTTP_PORT"        envDefault:"8080"`
	MetricsPort    int           `env:"METRICS_PORT"     envDefault:"8083"`
	LogLevel       string        `env:"LOG_LEVEL"        envDefault:"info"`
	OTLPEndpoint   string        `env:"OTLP_ENDPOINT"    envDefault:"http://jaeger:4318/v1/traces"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"  envDefault:"60s"`
	MaxUploadBytes int64         `env:"MAX_UPLOAD_BYTES" envDefault:"52428800"`
	TempDir        string        `env:"TEMP_DIR"         envDefault:"/tmp/pitchperfect"`

	ClassifierModelPath    string `env:"CLASSIFIER_MODEL_PATH"    envDefault:"models/cnn_bilstm_binary_classifier.onnx"`
	ClassifierMetadataPath string `env:"CLASSIFIER_METADATA_PATH" envDefault:"models/cnn_bilstm_binary_classifier.json"`
	EmbedderModelPath      string `env:"EMBEDDER_MODEL_PATH"      envDefault:"models/efficientnet_b0_embedder.onnx"`
	EmbedderMetadataPath   string `env:"EMBEDDER_METADATA_PATH"   envDefault:"models/efficientnet_b0_embedder.json"`
	SequenceLength         int    `env:"SEQUENCE_LENGTH"          envDefault:"8"`

	FFmpegPath  string `env:"FFMPEG_PATH"  envDefault:"ffmpeg"`
	FFprobePath string `env:"FFPROBE_PATH" envDefault:"ffprobe"`

	ElevenLabsAPIKey  string        `env:"ELEVENLABS_API_KEY"`
	ElevenLabsVoiceID string        `env:"ELEVENLABS_VOICE_ID" envDefault:"Clyde"`
	ElevenLabsBaseURL string        `env:"ELEVENLABS_BASE_URL" envDefault:"https://api.elevenlabs.io"`
	TTSTimeout        time.Duration `env:"TTS_TIMEOUT"         envDefault:"30s"`

	// VerifyCertificates is resolved once at startup and applied to
	// every outbound TLS connection. Disable only in development.
	VerifyCertificates bool `env:"VERIFY_CERTIFICATES" envDefault:"true"`

	// MessageSeed pins the coaching-message random source; 0 seeds
	// from the clock.
	MessageSeed int64 `env:"MESSAGE_SEED" envDefault:"0"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
