// settings.go implements the "voxboard settings" command group: get
// and save platform configuration.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsFlags struct {
	twilioSID        string
	twilioToken      string
	twilioPhone      string
	llmProvider      string
	llmKey           string
	llmModel         string
	deepgramKey      string
	deepgramModel    string
	deepgramVoice    string
	deepgramLanguage string
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Work with platform configuration",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current configuration",
	RunE:  runSettingsGet,
}

var settingsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Update configuration fields",
	Long: `Update platform configuration. The current configuration is
fetched, the given flags are applied on top, and the whole object is
saved back.`,
	RunE: runSettingsSave,
}

func init() {
	f := settingsSaveCmd.Flags()
	f.StringVar(&settingsFlags.twilioSID, "twilio-sid", "", "Twilio account SID")
	f.StringVar(&settingsFlags.twilioToken, "twilio-token", "", "Twilio auth token")
	f.StringVar(&settingsFlags.twilioPhone, "twilio-phone", "", "Twilio phone number")
	f.StringVar(&settingsFlags.llmProvider, "llm-provider", "", "LLM provider")
	f.StringVar(&settingsFlags.llmKey, "llm-key", "", "LLM API key")
	f.StringVar(&settingsFlags.llmModel, "llm-model", "", "LLM model")
	f.StringVar(&settingsFlags.deepgramKey, "deepgram-key", "", "Deepgram API key")
	f.StringVar(&settingsFlags.deepgramModel, "deepgram-model", "", "Deepgram model")
	f.StringVar(&settingsFlags.deepgramVoice, "deepgram-voice", "", "Deepgram voice")
	f.StringVar(&settingsFlags.deepgramLanguage, "deepgram-language", "", "Deepgram language")

	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSaveCmd)
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := context.Background()
	sess, err := d.requireSession(ctx)
	if err != nil {
		return err
	}

	cfg, err := d.client.GetUserConfig(ctx, sess.UserID)
	if err != nil {
		return err
	}

	fmt.Println("Twilio:")
	fmt.Printf("  Account SID:  %s\n", cfg.Twilio.AccountSID)
	fmt.Printf("  Auth token:   %s\n", maskSecret(cfg.Twilio.AuthToken))
	fmt.Printf("  Phone number: %s\n", cfg.Twilio.PhoneNumber)
	fmt.Println("LLM:")
	fmt.Printf("  Provider: %s\n", cfg.LLM.Provider)
	fmt.Printf("  API key:  %s\n", maskSecret(cfg.LLM.APIKey))
	fmt.Printf("  Model:    %s\n", cfg.LLM.Model)
	fmt.Println("Deepgram:")
	fmt.Printf("  API key:  %s\n", maskSecret(cfg.Deepgram.APIKey))
	fmt.Printf("  Model:    %s\n", cfg.Deepgram.Model)
	fmt.Printf("  Voice:    %s\n", cfg.Deepgram.Voice)
	fmt.Printf("  Language: %s\n", cfg.Deepgram.Language)
	return nil
}

func runSettingsSave(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := context.Background()
	sess, err := d.requireSession(ctx)
	if err != nil {
		return err
	}

	cfg, err := d.client.GetUserConfig(ctx, sess.UserID)
	if err != nil {
		return err
	}
	cfg.UserID = sess.UserID

	set := func(flag string, dst *string, val string) {
		if cmd.Flags().Changed(flag) {
			*dst = val
		}
	}
	set("twilio-sid", &cfg.Twilio.AccountSID, settingsFlags.twilioSID)
	set("twilio-token", &cfg.Twilio.AuthToken, settingsFlags.twilioToken)
	set("twilio-phone", &cfg.Twilio.PhoneNumber, settingsFlags.twilioPhone)
	set("llm-provider", &cfg.LLM.Provider, settingsFlags.llmProvider)
	set("llm-key", &cfg.LLM.APIKey, settingsFlags.llmKey)
	set("llm-model", &cfg.LLM.Model, settingsFlags.llmModel)
	set("deepgram-key", &cfg.Deepgram.APIKey, settingsFlags.deepgramKey)
	set("deepgram-model", &cfg.Deepgram.Model, settingsFlags.deepgramModel)
	set("deepgram-voice", &cfg.Deepgram.Voice, settingsFlags.deepgramVoice)
	set("deepgram-language", &cfg.Deepgram.Language, settingsFlags.deepgramLanguage)

	if err := d.client.SaveUserConfig(ctx, cfg); err != nil {
		return err
	}
	fmt.Println("Configuration saved")
	return nil
}

// maskSecret hides all but the last four characters of a credential.
func maskSecret(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
