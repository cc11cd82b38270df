package config

// Game identifies the storefront application the modding environment is installed into.
// - Name: Display name used in log output.
// - AppID: Steam application id.
type Game struct {
	Name  string `yaml:"name"`
	AppID uint32 `yaml:"app_id"`
}

// Framework describes where the modding framework is released.
// - Name: Display name used for progress output (e.g., BepInEx).
// - Owner/Repo: GitHub repository publishing the releases.
// - UserAgent: Value sent as User-Agent to the GitHub API.
// - TempName: Base name of the temporary archive written into the install directory.
type Framework struct {
	Name      string `yaml:"name"`
	Owner     string `yaml:"owner"`
	Repo      string `yaml:"repo"`
	UserAgent string `yaml:"user_agent"`
	TempName  string `yaml:"temp_name"`
}

// UninstallTargets is the fixed list of paths, relative to the install directory,
// that uninstall removes. Files are removed first, in order, then directories recursively.
//
// Nothing records what an install actually wrote, so this list has to be kept in
// step with the framework's archive layout by hand.
type UninstallTargets struct {
	Files       []string `yaml:"files"`
	Directories []string `yaml:"directories"`
}

// Profile bundles everything product specific about a run.
type Profile struct {
	Game      Game             `yaml:"game"`
	Framework Framework        `yaml:"framework"`
	Uninstall UninstallTargets `yaml:"uninstall"`
}

// Options holds the parsed command line flags.
type Options struct {
	Uninstall      bool
	SkipQuestions  bool
	Update         bool
	CheckIntegrity bool
	Platform       string
	Debug          bool
}

// InstallTarget is where and for which platform the framework gets installed.
// It is built once per run and not modified afterwards.
type InstallTarget struct {
	InstallDirectory string
	Platform         Platform
}

// Run is the configuration of a single installer run, passed explicitly to every component.
type Run struct {
	Options Options
	Profile Profile
	Target  InstallTarget
}
