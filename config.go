package yoastseo

import "github.com/almanaclabs/yoastseo/internal/runtimeconfig"

var (
	ErrGalleryFeatureRequired  = runtimeconfig.ErrGalleryFeatureRequired
	ErrDefaultLocaleRequired   = runtimeconfig.ErrDefaultLocaleRequired
	ErrLocalesRequired         = runtimeconfig.ErrLocalesRequired
	ErrHeadingLevelInvalid     = runtimeconfig.ErrHeadingLevelInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config                 = runtimeconfig.Config
	I18NConfig             = runtimeconfig.I18NConfig
	InstructionConfig      = runtimeconfig.InstructionConfig
	TitleInstructionConfig = runtimeconfig.TitleInstructionConfig
	GalleryConfig          = runtimeconfig.GalleryConfig
	NavigationConfig       = runtimeconfig.NavigationConfig
	URLKitResolverConfig   = runtimeconfig.URLKitResolverConfig
	Features               = runtimeconfig.Features
	LoggingConfig          = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
