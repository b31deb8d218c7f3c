package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func BuildDevelopmentLogger() (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return config.Build()
}

func BuildProductionLogger(outputFilePath string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{outputFilePath}
	cfg.ErrorOutputPaths = []string{outputFilePath}
	return cfg.Build()
}

// BuildLogger picks the file-backed production logger when a path is given and
// the console development logger otherwise. A disabled logger is a no-op.
func BuildLogger(enabled bool, outputFilePath string) (*zap.Logger, error) {
	if !enabled {
		return zap.NewNop(), nil
	}

	if outputFilePath != "" {
		return BuildProductionLogger(outputFilePath)
	}

	return BuildDevelopmentLogger()
}

// Install builds a logger and makes it the process-wide zap logger.
// On failure the global logger is left as a no-op and the error is returned.
func Install(enabled bool, outputFilePath string) error {
	logger, err := BuildLogger(enabled, outputFilePath)
	if err != nil {
		zap.ReplaceGlobals(zap.NewNop())
		return err
	}

	zap.ReplaceGlobals(logger)
	return nil
}
