package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kokorohq/kokoro/internal/gemini"
	"github.com/kokorohq/kokoro/internal/model"
	"github.com/kokorohq/kokoro/internal/voice"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ask [text]",
		Short: "Talk to the assistant",
		Long:  `Talk to the assistant in natural language, e.g. "Sarah's birthday is March 3rd" or "remind me Sarah likes tea". The assistant may add people, dates or nuances for you.`,
		Run:   runAsk,
	}

	cmd.Flags().Bool("voice", false, "Capture input via the configured voice command")

	RootCmd.AddCommand(cmd)
}

func runAsk(cmd *cobra.Command, args []string) {
	useVoice, _ := cmd.Flags().GetBool("voice")

	input := strings.TrimSpace(strings.Join(args, " "))
	if useVoice {
		rec := voice.FromEnv()
		if rec == nil {
			exitErr("ask", fmt.Errorf("voice input is not available: set KOKORO_VOICE_CMD to a transcription command"))
		}
		transcript, err := rec.Listen(cmd.Context())
		if err != nil {
			exitErr("ask", err)
		}
		input = transcript
		fmt.Printf("> %s\n", input)
	}
	if input == "" {
		exitErr("ask", fmt.Errorf("nothing to ask: pass text or use --voice"))
	}

	c, s, err := openCircle(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	var names []string
	for _, p := range c.People() {
		names = append(names, p.Name)
	}

	client := gemini.NewFromEnv(newLogger())
	result := client.ProcessCommand(cmd.Context(), input, names)

	fmt.Println(result.Message)

	if result.Command.Action != model.ActionNone {
		if c.Execute(cmd.Context(), result.Command) {
			fmt.Printf("(applied: %s)\n", result.Command.Action)
		}
	}
}
