package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tomuhal/host/config"
	"tomuhal/host/probe"
	"tomuhal/host/serial"
)

var rootCmd = &cobra.Command{
	Use:   "clockprobe",
	Short: "Measure a board's cycle counter rate against host time",
	Long: "clockprobe reads the clock reports the firmware prints on its debug UART\n" +
		"and estimates how fast the cycle counter really runs compared to the\n" +
		"frequency the board reports.",
	SilenceUsage: true,
	RunE:         runProbe,
}

// flags
var (
	configFlag    string
	deviceFlag    string
	baudFlag      int
	samplesFlag   int
	toleranceFlag float64
	verboseFlag   bool
)

func init() {
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "path to a YAML config file")
	rootCmd.Flags().StringVarP(&deviceFlag, "device", "d", "", "serial device path")
	rootCmd.Flags().IntVarP(&baudFlag, "baud", "b", 0, "baud rate")
	rootCmd.Flags().IntVarP(&samplesFlag, "samples", "n", 0, "number of reports to collect")
	rootCmd.Flags().Float64Var(&toleranceFlag, "tolerance-ppm", 0, "allowed frequency error in ppm")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose output")
}

// loadConfig reads the config file if one was given and applies flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configFlag != "" {
		var err error
		if cfg, err = config.ReadFile(configFlag); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("device") {
		cfg.Device = deviceFlag
	}
	if flags.Changed("baud") {
		cfg.Baud = baudFlag
	}
	if flags.Changed("samples") {
		cfg.Samples = samplesFlag
	}
	if flags.Changed("tolerance-ppm") {
		cfg.TolerancePPM = toleranceFlag
	}
	return cfg, cfg.Validate()
}

func runProbe(cmd *cobra.Command, _ []string) error {
	log.SetLevel(log.InfoLevel)
	if verboseFlag {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	port, err := serial.Open(cfg.Serial())
	if err != nil {
		return err
	}
	defer port.Close()

	if err := port.Flush(); err != nil {
		log.Warningf("flushing %s: %v", cfg.Device, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("collecting %d reports from %s at %d baud", cfg.Samples, cfg.Device, cfg.Baud)
	est, err := probe.Run(ctx, port, probe.Options{
		Samples:     cfg.Samples,
		IdleTimeout: cfg.IdleTimeout(),
	})
	if err != nil {
		return err
	}

	fmt.Println(est)
	if !est.Within(cfg.TolerancePPM) {
		return fmt.Errorf("frequency error %+.1fppm exceeds tolerance %.1fppm", est.PPM, cfg.TolerancePPM)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
