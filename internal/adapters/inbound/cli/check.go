package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/abdidvp/docck/internal/adapters/outbound/config"
	"github.com/abdidvp/docck/internal/adapters/outbound/descriptor"
	"github.com/abdidvp/docck/internal/adapters/outbound/fileset"
	"github.com/abdidvp/docck/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/docck/internal/adapters/outbound/history"
	"github.com/abdidvp/docck/internal/adapters/outbound/httpprobe"
	"github.com/abdidvp/docck/internal/adapters/outbound/output"
	"github.com/abdidvp/docck/internal/adapters/outbound/tui"
	"github.com/abdidvp/docck/internal/application"
	"github.com/abdidvp/docck/internal/domain"
)

type checkOptions struct {
	configPath      string
	offline         bool
	output          string
	format          string
	siteDir         string
	concurrency     int
	userAgent       string
	connectTimeout  time.Duration
	responseTimeout time.Duration
	proxyProtocol   string
	proxyHost       string
	proxyPort       int
	proxyUser       string
	proxyPassword   string
	nonProxyHosts   string
	showHistory     bool
}

func newCheckCmd() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Check a project's descriptor and site documentation",
		Long: "Validate the project descriptor (project.yaml or pom.xml) under path and every module it declares. " +
			"Exits with 1 when documentation problems were found and 2 when the check could not run.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			hist := history.New()
			if opts.showHistory {
				entries, err := hist.Load(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			cfg, err := loadRunConfig(cmd, absPath, &opts)
			if err != nil {
				return err
			}

			sink, err := selectSink(cmd, cfg, opts.format)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			userAgent := cfg.UserAgent
			if userAgent == "" {
				userAgent = httpprobe.UserAgent(version)
			}
			prober := httpprobe.New(httpprobe.NewClient(ctx, cfg), userAgent)

			svc := application.NewCheckService(cfg,
				descriptor.New(cfg.SiteDirectory),
				prober,
				fileset.New(),
				application.WithGitInfo(gitinfo.New()),
				application.WithHistory(hist),
			)

			report, err := svc.CheckPath(ctx, absPath)
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}
			return svc.Publish(ctx, report, sink)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "Configuration file (defaults to <path>/.docck.yaml)")
	f.BoolVar(&opts.offline, "offline", false, "Do not access the network; URLs are reported as not verified")
	f.StringVarP(&opts.output, "output", "o", "", "Write the plain-text report to this file instead of the console")
	f.StringVar(&opts.format, "format", "text", "Console report format: text, pretty or json")
	f.StringVar(&opts.siteDir, "site-dir", "", "Site directory, relative to each project (default src/site)")
	f.IntVar(&opts.concurrency, "concurrency", 0, "Number of projects validated at once (default 1)")
	f.StringVar(&opts.userAgent, "user-agent", "", "User-Agent header sent with URL checks")
	f.DurationVar(&opts.connectTimeout, "connect-timeout", 0, "Connection timeout for URL checks (default 5s)")
	f.DurationVar(&opts.responseTimeout, "response-timeout", 0, "Response timeout for URL checks (default 5s)")
	f.StringVar(&opts.proxyProtocol, "proxy-protocol", "", "Proxy protocol: http or https")
	f.StringVar(&opts.proxyHost, "proxy-host", "", "Proxy host used for URL checks")
	f.IntVar(&opts.proxyPort, "proxy-port", 0, "Proxy port")
	f.StringVar(&opts.proxyUser, "proxy-user", "", "Proxy user name")
	f.StringVar(&opts.proxyPassword, "proxy-password", "", "Proxy password (prefer "+config.PasswordEnv+")")
	f.StringVar(&opts.nonProxyHosts, "non-proxy-hosts", "", "Hosts reached without the proxy, separated by |")
	f.BoolVar(&opts.showHistory, "history", false, "Show run history instead of checking")

	return cmd
}

// loadRunConfig reads the configuration file and lays the flags that were
// set on the command line over it.
func loadRunConfig(cmd *cobra.Command, projectPath string, opts *checkOptions) (domain.RunConfig, error) {
	loader := config.New()

	var (
		cfg domain.RunConfig
		err error
	)
	if opts.configPath != "" {
		cfg, err = loader.LoadFile(opts.configPath)
	} else {
		cfg, err = loader.Load(projectPath)
	}
	if err != nil {
		return domain.RunConfig{}, fmt.Errorf("loading config: %w", err)
	}
	if cfg.Output != "" && !filepath.IsAbs(cfg.Output) {
		cfg.Output = filepath.Join(projectPath, cfg.Output)
	}

	f := cmd.Flags()
	if f.Changed("offline") {
		cfg.Offline = opts.offline
	}
	if f.Changed("output") {
		cfg.Output = opts.output
	}
	if f.Changed("site-dir") {
		cfg.SiteDirectory = opts.siteDir
	}
	if f.Changed("concurrency") {
		cfg.Concurrency = opts.concurrency
	}
	if f.Changed("user-agent") {
		cfg.UserAgent = opts.userAgent
	}
	if f.Changed("connect-timeout") {
		cfg.Timeouts.Connect = opts.connectTimeout
	}
	if f.Changed("response-timeout") {
		cfg.Timeouts.Response = opts.responseTimeout
	}
	if f.Changed("proxy-protocol") {
		cfg.Proxy.Protocol = opts.proxyProtocol
	}
	if f.Changed("proxy-host") {
		cfg.Proxy.Host = opts.proxyHost
	}
	if f.Changed("proxy-port") {
		cfg.Proxy.Port = opts.proxyPort
	}
	if f.Changed("proxy-user") {
		cfg.Proxy.Username = opts.proxyUser
	}
	if f.Changed("proxy-password") {
		cfg.Proxy.Password = opts.proxyPassword
	}
	if f.Changed("non-proxy-hosts") {
		cfg.Proxy.NonProxyHosts = []string{opts.nonProxyHosts}
	}

	if err := cfg.Validate(); err != nil {
		return domain.RunConfig{}, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg.WithDefaults(), nil
}

func selectSink(cmd *cobra.Command, cfg domain.RunConfig, format string) (domain.ReportSink, error) {
	if cfg.Output != "" {
		return output.NewFileSink(cfg.Output), nil
	}
	switch format {
	case "text":
		return output.NewConsoleSink(), nil
	case "pretty":
		return output.NewPrettySink(cmd.OutOrStdout()), nil
	case "json":
		return output.NewJSONSink(cmd.OutOrStdout()), nil
	default:
		return nil, fmt.Errorf("unknown format %q (valid: text, pretty, json)", format)
	}
}
