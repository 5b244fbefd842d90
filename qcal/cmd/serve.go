package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/sarchlab/qcal/deviceparams"
	"github.com/sarchlab/qcal/inspection"
)

var serveCmd = &cobra.Command{
	Use:   "serve [properties.json]",
	Short: "Serve extracted calibration parameters over HTTP.",
	Long: "`serve` starts a web server that exposes the raw properties " +
		"report and the extracted calibration values as JSON endpoints.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			if env := os.Getenv("QCAL_PORT"); env != "" {
				p, err := strconv.Atoi(env)
				if err != nil {
					log.Fatalf("Invalid QCAL_PORT: %v", err)
				}
				port = p
			}
		}

		inspector := inspection.NewInspector()
		if port != 0 {
			inspector.WithPortNumber(port)
		}
		inspector.RegisterProvider(deviceparams.FileProvider{Path: args[0]})

		actualPort := inspector.StartServer()

		open, _ := cmd.Flags().GetBool("open")
		if open {
			url := fmt.Sprintf("http://localhost:%d/api/gates", actualPort)
			if err := browser.OpenURL(url); err != nil {
				fmt.Fprintf(os.Stderr, "Cannot open browser: %v\n", err)
			}
		}

		select {}
	},
}

func init() {
	serveCmd.Flags().Int("port", 0,
		"port to listen on (default from QCAL_PORT, or a random port)")
	serveCmd.Flags().Bool("open", false,
		"open the server in a browser")
	rootCmd.AddCommand(serveCmd)
}
