// Package app - команды lbsctl, консольного клиента сервиса геолокации.
//
// Команды вызывают pkg/lbs напрямую, без шлюза. Ключ и адрес сервиса
// берутся из флагов, переменных окружения (LBS_KEY, LBS_BASE_URL, LBS_TIMEOUT)
// или .env файла.
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lbs-gateway/pkg/lbs"
)

const (
	cliName        = "lbsctl"
	cliDescription = "lbsctl - client for the location web service"
)

// GlobalOptions - общие флаги всех команд
type GlobalOptions struct {
	ConfigFile string
	Timeout    time.Duration
	Options    map[string]string
	Raw        bool

	v *viper.Viper
}

// NewLBSCtlCommand создаёт корневую команду со всеми подкомандами
func NewLBSCtlCommand() *cobra.Command {
	opts := &GlobalOptions{v: viper.New()}

	cmd := &cobra.Command{
		Use:   cliName,
		Short: cliDescription,
		Long: `lbsctl calls the location web service (apis.map.qq.com) from the command line.

Every command prints the "result" of the response envelope as JSON. Use --raw
to print the whole envelope. Extra request parameters go through -o key=value.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigFile, "config", ".env", "env file with LBS_* and DB_* settings")
	flags.String("key", "", "service key (env LBS_KEY)")
	flags.String("base-url", "", "service address (env LBS_BASE_URL)")
	flags.DurationVar(&opts.Timeout, "timeout", 0, "request timeout (env LBS_TIMEOUT, seconds)")
	flags.StringToStringVarP(&opts.Options, "opt", "o", nil, "extra request parameter key=value, repeatable")
	flags.BoolVar(&opts.Raw, "raw", false, "print the whole response envelope")

	_ = opts.v.BindPFlag("key", flags.Lookup("key"))
	_ = opts.v.BindPFlag("base_url", flags.Lookup("base-url"))

	cmd.AddCommand(
		NewGeocodeCommand(opts),
		NewReverseCommand(opts),
		NewSmartCommand(opts),
		NewPlaceCommand(opts),
		NewAddressCommand(opts),
		NewDirectionCommand(opts),
		NewTruckingCommand(opts),
		NewMatrixCommand(opts),
		NewDistrictCommand(opts),
		NewCoordCommand(opts),
		NewIPCommand(opts),
		NewNetworkCommand(opts),
		NewMigrateCommand(opts),
		NewPublishCommand(opts),
	)

	return cmd
}

// load читает .env и окружение. Флаги имеют приоритет.
func (o *GlobalOptions) load() error {
	v := o.v
	v.SetConfigFile(o.ConfigFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	_ = v.BindEnv("key", "LBS_KEY")
	_ = v.BindEnv("base_url", "LBS_BASE_URL")
	v.SetDefault("base_url", lbs.DefaultBaseURL)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// timeout - флаг --timeout или LBS_TIMEOUT в секундах
func (o *GlobalOptions) timeout() time.Duration {
	if o.Timeout > 0 {
		return o.Timeout
	}
	if s := o.v.GetInt("LBS_TIMEOUT"); s > 0 {
		return time.Duration(s) * time.Second
	}
	return lbs.DefaultTimeout
}

func (o *GlobalOptions) client() (*lbs.Client, error) {
	key := o.v.GetString("key")
	if key == "" {
		return nil, errors.New("service key is required: set --key or LBS_KEY")
	}
	return lbs.New(key, lbs.Config{
		BaseURL: o.v.GetString("base_url"),
		Timeout: o.timeout(),
	}, nil)
}

// params - значения -o key=value как параметры запроса
func (o *GlobalOptions) params() lbs.Params {
	if len(o.Options) == 0 {
		return nil
	}
	p := make(lbs.Params, len(o.Options))
	for k, v := range o.Options {
		p[k] = v
	}
	return p
}
