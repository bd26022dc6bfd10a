package cliconfig

// MergeConfig merges source config into target, updating sources tracking.
// Only set values from source are applied; lists are replaced, not
// appended, and custom matchers accumulate.
func MergeConfig(target, source *CLIConfig, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.CassettePath != "" {
		target.CassettePath = source.CassettePath
		target.Sources["cassettePath"] = sourceType
	}
	if source.Storage != "" {
		target.Storage = source.Storage
		target.Sources["storage"] = sourceType
	}
	if source.LibraryHooks != nil {
		target.LibraryHooks = source.LibraryHooks
		target.Sources["libraryHooks"] = sourceType
	}
	if source.RequestMatchers != nil {
		target.RequestMatchers = source.RequestMatchers
		target.Sources["requestMatchers"] = sourceType
	}
	if len(source.CustomMatchers) > 0 {
		target.CustomMatchers = append(target.CustomMatchers, source.CustomMatchers...)
		target.Sources["customMatchers"] = sourceType
	}
	if source.WhiteList != nil {
		target.WhiteList = source.WhiteList
		target.Sources["whiteList"] = sourceType
	}
	if source.BlackList != nil {
		target.BlackList = source.BlackList
		target.Sources["blackList"] = sourceType
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources["logLevel"] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources["logFormat"] = sourceType
	}
}
