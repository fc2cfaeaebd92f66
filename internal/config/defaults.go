package config

const (
	defaultConfigPath    = "~/.config/redzebra/config.toml"
	defaultDocumentsDir  = "~/Documents/RedZebra"
	defaultFontFamily    = FontFamilyMenlo
	defaultFontSize      = 17
	minFontSize          = 10
	maxFontSize          = 96
	defaultZalgoMaxMarks = 8
	defaultLogFormat     = "console"
	defaultLogLevel      = "warn"
)

// MaxZalgoMarks is the largest accepted per-pool zalgo mark limit.
const MaxZalgoMarks = 32

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Editor: Editor{
			FontFamily: defaultFontFamily,
			FontSize:   defaultFontSize,
		},
		Paths: Paths{
			DocumentsDir: defaultDocumentsDir,
		},
		Decorate: Decorate{
			ZalgoMaxMarks: defaultZalgoMaxMarks,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
