package main

import (
	"github.com/spf13/cobra"

	"linenotify/internal/adapter/logfile"
	"linenotify/internal/di"
	"linenotify/internal/domain/model"
	"linenotify/internal/domain/ports"
	"linenotify/internal/usecase"
)

type sendOptions struct {
	project        string
	number         int
	result         string
	previous       string
	url            string
	logFile        string
	logStdin       bool
	sendType       string
	tokenName      string
	notifyOnChange bool
}

func newSendCommand(configPath *string) *cobra.Command {
	var opts sendOptions

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Notify the result of one finished build",
		Long: `Decide whether the build result should be posted and post it.

Intended for a post-build pipeline step. Delivery problems are reported on
stdout and never change the exit status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sender, cleanup, err := di.InitializeSender(*configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			event := opts.event(cmd, sender.Config.PolicyFor(opts.project))
			event.Outcome.LogTail = usecase.ReadLogTail(cmd.Context(), opts.logSource(cmd), sender.Config.Notify.LogTailLines, sender.Logger)
			event.Console = cmd.OutOrStdout()

			sender.Notification.Perform(cmd.Context(), event)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.project, "project", "", "Project (job) name")
	flags.IntVar(&opts.number, "number", 0, "Build number")
	flags.StringVar(&opts.result, "result", "", "Build result (SUCCESS, FAILURE, UNSTABLE, ABORTED, NOT_BUILT)")
	flags.StringVar(&opts.previous, "previous", "", "Result of the previous build, empty when there is none")
	flags.StringVar(&opts.url, "url", "", "Job URL; the build number is appended")
	flags.StringVar(&opts.logFile, "log-file", "", "Console log file to take the tail from")
	flags.BoolVar(&opts.logStdin, "log-stdin", false, "Read the console log from stdin")
	flags.StringVar(&opts.sendType, "send-type", "", "Override the send type (NEVER, ALWAYS, ONLY_SUCCESS, ONLY_FAILURE)")
	flags.StringVar(&opts.tokenName, "token-name", "", "Override the token name")
	flags.BoolVar(&opts.notifyOnChange, "notify-on-change", false, "Override notify-on-status-change")
	_ = cmd.MarkFlagRequired("project")
	cmd.MarkFlagsMutuallyExclusive("log-file", "log-stdin")

	return cmd
}

// event builds the event from flags; explicitly set policy flags win over
// the configured policy.
func (o sendOptions) event(cmd *cobra.Command, configured model.PolicyConfig) model.BuildEvent {
	policy := configured
	flags := cmd.Flags()
	if flags.Changed("send-type") {
		policy.SendType = o.sendType
	}
	if flags.Changed("token-name") {
		policy.TokenName = o.tokenName
	}
	if flags.Changed("notify-on-change") {
		policy.NotifyOnStatusChange = o.notifyOnChange
	}

	return model.BuildEvent{
		Outcome: model.BuildOutcome{
			Result:      model.ParseResult(o.result),
			ProjectName: o.project,
			BuildNumber: o.number,
			URL:         o.url,
		},
		PreviousResult: model.ParseResult(o.previous),
		Policy:         policy,
	}
}

func (o sendOptions) logSource(cmd *cobra.Command) ports.LogSource {
	switch {
	case o.logFile != "":
		return logfile.File{Path: o.logFile}
	case o.logStdin:
		return logfile.Reader{R: cmd.InOrStdin()}
	default:
		return nil
	}
}
