package cli

import (
	"fmt"
	"strconv"

	"github.com/glitch-xp/loyola-academic-calender/internal/keyring"
	"github.com/glitch-xp/loyola-academic-calender/internal/timeutil"
)

type ConfigCmd struct {
	Show       ConfigShowCmd       `cmd:"" default:"1" help:"Print the current configuration."`
	Set        ConfigSetCmd        `cmd:"" help:"Set a configuration value."`
	SetToken   ConfigSetTokenCmd   `cmd:"" name:"set-token" help:"Store the webhook bearer token in the system keyring."`
	ClearToken ConfigClearTokenCmd `cmd:"" name:"clear-token" help:"Remove the webhook bearer token from the system keyring."`
}

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *Context) error {
	cfg := ctx.Config
	fmt.Printf("config file:     %s\n", ctx.ConfigPath)
	fmt.Printf("base_url:        %s\n", cfg.BaseURL)
	fmt.Printf("timezone:        %s\n", cfg.Timezone)
	fmt.Printf("refresh_cron:    %s\n", cfg.RefreshCron)
	fmt.Printf("notify.enabled:  %t\n", cfg.Notify.Enabled)
	fmt.Printf("notify.webhook:  %s\n", cfg.Notify.WebhookURL)
	fmt.Printf("notify.lead:     %d min\n", cfg.Notify.LeadMinutes)

	token, err := keyring.GetToken()
	if err == nil && token != "" {
		fmt.Println("webhook token:   set")
	} else {
		fmt.Println("webhook token:   not set")
	}
	return nil
}

type ConfigSetCmd struct {
	Key   string `arg:"" help:"One of: base_url, timezone, refresh_cron, notify.enabled, notify.webhook, notify.lead"`
	Value string `arg:"" help:"New value."`
}

func (c *ConfigSetCmd) Run(ctx *Context) error {
	cfg := ctx.Config
	switch c.Key {
	case "base_url":
		cfg.BaseURL = c.Value
	case "timezone":
		if err := timeutil.ValidateTimezone(c.Value); err != nil {
			return err
		}
		cfg.Timezone = c.Value
	case "refresh_cron":
		cfg.RefreshCron = c.Value
	case "notify.enabled":
		enabled, err := strconv.ParseBool(c.Value)
		if err != nil {
			return fmt.Errorf("notify.enabled wants true or false, got %q", c.Value)
		}
		cfg.Notify.Enabled = enabled
	case "notify.webhook":
		cfg.Notify.WebhookURL = c.Value
	case "notify.lead":
		lead, err := strconv.Atoi(c.Value)
		if err != nil || lead < 0 {
			return fmt.Errorf("notify.lead wants a non-negative integer, got %q", c.Value)
		}
		cfg.Notify.LeadMinutes = lead
	default:
		return fmt.Errorf("unknown config key %q", c.Key)
	}

	if err := cfg.Save(ctx.ConfigPath); err != nil {
		return err
	}
	fmt.Printf("%s updated\n", c.Key)
	return nil
}

type ConfigSetTokenCmd struct {
	Token string `arg:"" help:"Bearer token sent with webhook notifications."`
}

func (c *ConfigSetTokenCmd) Run(ctx *Context) error {
	if err := keyring.SetToken(c.Token); err != nil {
		return err
	}
	fmt.Println("webhook token stored")
	return nil
}

type ConfigClearTokenCmd struct{}

func (c *ConfigClearTokenCmd) Run(ctx *Context) error {
	if err := keyring.DeleteToken(); err != nil {
		return err
	}
	fmt.Println("webhook token cleared")
	return nil
}
