package config

import "testing"

func TestFillDefaults(t *testing.T) {
	var c Config
	c.FillDefaults()
	if c.App.LogLevel != "info" {
		t.Errorf("log level: got %q", c.App.LogLevel)
	}
	if c.Redis.Addr != "127.0.0.1:6379" {
		t.Errorf("redis addr: got %q", c.Redis.Addr)
	}
	if c.Forum.Timeout != "10s" {
		t.Errorf("forum timeout: got %q", c.Forum.Timeout)
	}
	if c.OpenAI.Model != "" {
		t.Errorf("openai model defaulted without an api key: %q", c.OpenAI.Model)
	}
}

func TestFillDefaultsKeepsExplicitValues(t *testing.T) {
	c := Config{}
	c.App.LogLevel = "debug"
	c.Forum.BaseURL = "https://forum.example.com"
	c.OpenAI.APIKey = "sk-test"
	c.FillDefaults()
	if c.App.LogLevel != "debug" {
		t.Errorf("log level overwritten: %q", c.App.LogLevel)
	}
	if c.Forum.BaseURL != "https://forum.example.com" {
		t.Errorf("base url overwritten: %q", c.Forum.BaseURL)
	}
	if c.OpenAI.Model == "" {
		t.Errorf("openai model not defaulted when api key set")
	}
}
