package config

// Platform is a value accepted by the --platform flag.
type Platform string

const (
	WinX64   Platform = "win-x64"
	WinX86   Platform = "win-x86"
	MacOS    Platform = "macos"
	LinuxX64 Platform = "linux-x64"
	LinuxX86 Platform = "linux-x86"
)

// DefaultPlatform is used when --platform is unset or not recognized.
const DefaultPlatform = WinX64

// Platforms lists the accepted --platform values in help order.
var Platforms = []Platform{WinX64, WinX86, MacOS, LinuxX64, LinuxX86}

// assetTags maps a platform to the substring BepInEx uses in its asset names.
var assetTags = map[Platform]string{
	WinX64:   "win_x64",
	WinX86:   "win_x86",
	MacOS:    "macos_x64",
	LinuxX64: "linux_x64",
	LinuxX86: "linux_x86",
}

// ParsePlatform returns the platform for a flag value, falling back to DefaultPlatform.
func ParsePlatform(value string) Platform {
	p := Platform(value)
	if _, ok := assetTags[p]; ok {
		return p
	}
	return DefaultPlatform
}

// Known reports whether value is one of the accepted --platform values.
func Known(value string) bool {
	_, ok := assetTags[Platform(value)]
	return ok
}

// AssetTag is the substring a release asset name must contain to match this platform.
func (p Platform) AssetTag() string {
	if tag, ok := assetTags[p]; ok {
		return tag
	}
	return assetTags[DefaultPlatform]
}
