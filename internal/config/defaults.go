package config

import "github.com/spf13/viper"

// setDefaults registers every key so AutomaticEnv can override keys that
// appear in no config file.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.allowed_origins", d.Server.AllowedOrigins)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)

	v.SetDefault("llm.provider", d.LLM.Provider)
	v.SetDefault("llm.capture_bodies", d.LLM.CaptureBodies)
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", d.LLM.Anthropic.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", d.LLM.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", d.LLM.Gemini.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", d.LLM.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")
	v.SetDefault("llm.speech.api_key", "")
	v.SetDefault("llm.speech.model", d.LLM.Speech.Model)
	v.SetDefault("llm.speech.voice", d.LLM.Speech.Voice)
	v.SetDefault("llm.speech.base_url", "")
	v.SetDefault("llm.retry.max_attempts", d.LLM.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", d.LLM.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", d.LLM.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", d.LLM.Retry.Multiplier)

	v.SetDefault("store.enabled", d.Store.Enabled)
	v.SetDefault("store.path", d.Store.Path)

	v.SetDefault("log.mode", d.Log.Mode)
	v.SetDefault("log.level", d.Log.Level)

	v.SetDefault("pipeline.concurrent", d.Pipeline.Concurrent)
	v.SetDefault("pipeline.strict", false)
	v.SetDefault("pipeline.stage_timeout", d.Pipeline.StageTimeout)
	v.SetDefault("pipeline.themes.max_tokens", d.Pipeline.Themes.MaxTokens)
	v.SetDefault("pipeline.themes.temperature", d.Pipeline.Themes.Temperature)
	v.SetDefault("pipeline.themes.strict", d.Pipeline.Themes.Strict)
	v.SetDefault("pipeline.poem.max_tokens", d.Pipeline.Poem.MaxTokens)
	v.SetDefault("pipeline.poem.temperature", d.Pipeline.Poem.Temperature)
	v.SetDefault("pipeline.poem.strict", d.Pipeline.Poem.Strict)
	v.SetDefault("pipeline.affirmations.max_tokens", d.Pipeline.Affirmations.MaxTokens)
	v.SetDefault("pipeline.affirmations.temperature", d.Pipeline.Affirmations.Temperature)
	v.SetDefault("pipeline.affirmations.strict", d.Pipeline.Affirmations.Strict)
	v.SetDefault("pipeline.limits.max_letter_runes", d.Pipeline.Limits.MaxLetterRunes)
	v.SetDefault("pipeline.limits.max_display_name_runes", d.Pipeline.Limits.MaxDisplayNameRunes)

	v.SetDefault("telemetry.enabled", d.Telemetry.Enabled)
	v.SetDefault("telemetry.exporter", d.Telemetry.Exporter)
	v.SetDefault("telemetry.endpoint", d.Telemetry.Endpoint)
	v.SetDefault("telemetry.sample_rate", d.Telemetry.SampleRate)
	v.SetDefault("telemetry.service_name", d.Telemetry.ServiceName)
	v.SetDefault("telemetry.service_version", d.Telemetry.ServiceVersion)
}
