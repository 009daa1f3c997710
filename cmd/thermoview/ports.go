package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hotpixel/thermoview/pkg/sensor"
)

func newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List serial ports the sensor might be attached to",
		Run: func(cmd *cobra.Command, args []string) {
			ports, err := sensor.Ports()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			if len(ports) == 0 {
				fmt.Println("No serial ports found")
				return
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			_, _ = fmt.Fprintln(w, "Port\tUSB\tVID:PID\tSerial")
			_, _ = fmt.Fprintln(w, "----\t---\t-------\t------")
			for _, p := range ports {
				vidpid := ""
				if p.IsUSB {
					vidpid = fmt.Sprintf("%s:%s", p.VID, p.PID)
				}
				_, _ = fmt.Fprintf(w, "%s\t%t\t%s\t%s\n", p.Name, p.IsUSB, vidpid, p.SerialNumber)
			}
			_ = w.Flush()
		},
	}
}
