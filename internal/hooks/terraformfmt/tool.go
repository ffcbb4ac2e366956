package terraformfmt

// Environment variables naming an explicit terraform binary, in order of
// precedence.
const (
	pctTFPathEnvVar        = "PCT_TFPATH"
	terragruntTFPathEnvVar = "TERRAGRUNT_TFPATH"
)

const defaultTool = "terraform"

// fallbackTools are looked up in PATH when no explicit binary is configured.
var fallbackTools = []string{"terraform", "tofu"}

// locateTool returns the formatting binary to run. An explicit path from the
// hook configuration or the environment is returned verbatim. When nothing is
// found, the default name is returned and the launch failure is left to the
// runner.
func locateTool(config *Config, env map[string]string, lookPath func(string) (string, error)) string {
	if config.TFPath != "" {
		return config.TFPath
	}

	for _, name := range []string{pctTFPathEnvVar, terragruntTFPathEnvVar} {
		if path := env[name]; path != "" {
			return path
		}
	}

	for _, tool := range fallbackTools {
		_, err := lookPath(tool)
		if err == nil {
			return tool
		}
	}

	return defaultTool
}
