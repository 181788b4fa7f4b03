package utils

import "go.uber.org/zap"

// NewLogger returns a zap logger named "storefront". When debug is true it uses
// the development config (console encoding, debug level); otherwise the
// production config (JSON, info level). Both write to stderr so results
// printed on stdout stay machine-readable.
func NewLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Named("storefront"), nil
}
