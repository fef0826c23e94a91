package cmd

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/netsim-go/netsim/sim"
	"github.com/netsim-go/netsim/sim/cid"
)

var (
	scenarioPath string // Path to the YAML scenario file
	logLevel     string // Log verbosity level
)

// envDefaults are flag defaults overridable from the environment, so CI and
// wrapper scripts can steer the CLI without rewriting flag lists.
type envDefaults struct {
	LogLevel string `env:"NETSIM_LOG" envDefault:"info"`
	Scenario string `env:"NETSIM_SCENARIO" envDefault:"scenario.yaml"`
}

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "netsim",
	Short: "Discrete-event network simulator",
}

// runCmd builds the scenario's objects, applies their attribute
// configuration and reports the resulting state.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Configure and report a simulation scenario",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		runID := uuid.NewString()
		logrus.Infof("Starting run %s with scenario %s", runID, scenarioPath)

		scenario, err := LoadScenario(scenarioPath)
		if err != nil {
			logrus.Fatalf("Unable to load scenario: %v", err)
		}

		nodes, servers, clients, err := scenario.Build()
		if err != nil {
			logrus.Fatalf("Unable to build scenario: %v", err)
		}

		for _, n := range nodes {
			x, y := n.Model.Position()
			vx, vy := n.Model.Velocity()
			logrus.Infof("node %s: position=(%g, %g) velocity=(%g, %g)", n.Name, x, y, vx, vy)
			dumpAttributes(n.Name, n.Model)
		}
		for i, s := range servers {
			logrus.Infof("server %d: port=%d", i, s.Port)
			dumpAttributes(scenario.Servers[i].Name, s)
		}
		// Each client connection gets a transport identifier from the
		// base-station allocator.
		cids := cid.NewFactory()
		for i, c := range clients {
			connID, err := cids.AllocateTransportOrSecondary()
			if err != nil {
				logrus.Fatalf("Unable to allocate connection identifier: %v", err)
			}
			logrus.Infof("client %d: cid=%v remote=%s:%d interval=%v", i, connID, c.RemoteAddress, c.RemotePort, c.Interval)
			dumpAttributes(scenario.Clients[i].Name, c)
		}

		logrus.Infof("Run %s complete: %d nodes, %d servers, %d clients",
			runID, len(nodes), len(servers), len(clients))
	},
}

// dumpAttributes serializes every readable attribute of obj at debug level.
func dumpAttributes(name string, obj sim.Object) {
	for _, a := range obj.Attributes() {
		text, err := sim.GetAttribute(obj, a.Name)
		if err != nil {
			continue
		}
		logrus.Debugf("  %s.%s = %q (%s)", name, a.Name, text, a.Checker.Name())
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	defaults := envDefaults{}
	if err := env.Parse(&defaults); err != nil {
		defaults = envDefaults{LogLevel: "info", Scenario: "scenario.yaml"}
	}

	runCmd.Flags().StringVar(&scenarioPath, "scenario", defaults.Scenario, "Path to the YAML scenario file")
	runCmd.Flags().StringVar(&logLevel, "log", defaults.LogLevel, "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(runCmd)
}
