package response

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"runtime"
	"strings"

	"github.com/gin-gonic/gin"

	"pulse-srv/pkg/discord"
)

func captureStackTrace() []string {
	var pcs [DefaultStackTraceDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	var trace []string
	for {
		f, more := frames.Next()
		trace = append(trace, fmt.Sprintf("%s:%d %s", f.File, f.Line, f.Function))
		if !more {
			break
		}
	}
	return trace
}

func reportAsync(d discord.IDiscord, message string) {
	go func() {
		for _, chunk := range splitMessage(message, discordChunkLen) {
			if err := d.ReportBug(context.Background(), chunk); err != nil {
				log.Printf("pkg.response.reportAsync.ReportBug: %v\n", err)
			}
		}
	}()
}

// splitMessage breaks message on line boundaries into chunks of at most max bytes.
func splitMessage(message string, max int) []string {
	var chunks []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, strings.TrimSuffix(current.String(), "\n"))
			current.Reset()
		}
	}
	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		if current.Len()+len(line) > max {
			flush()
			for len(line) > max {
				chunks = append(chunks, line[:max])
				line = line[max:]
			}
		}
		current.WriteString(line)
	}
	flush()
	return chunks
}

func buildReport(c *gin.Context, errString string, backtrace []string) string {
	var sb strings.Builder
	sb.WriteString("================ PULSE SERVICE ERROR ================\n")
	if c != nil && c.Request != nil {
		fmt.Fprintf(&sb, "Route   : %s\n", c.Request.URL.String())
		fmt.Fprintf(&sb, "Method  : %s\n", c.Request.Method)
		if params := c.Request.URL.Query().Encode(); params != "" {
			fmt.Fprintf(&sb, "Params  : %s\n", params)
		}
		if c.Request.Body != nil {
			body, err := io.ReadAll(c.Request.Body)
			if err == nil && len(body) > 0 {
				c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
				var pretty bytes.Buffer
				if json.Indent(&pretty, body, "    ", "  ") == nil {
					fmt.Fprintf(&sb, "Body    :\n    %s\n", pretty.String())
				} else {
					fmt.Fprintf(&sb, "Body    :\n    %s\n", body)
				}
			}
		}
		sb.WriteString("-----------------------------------------------------\n")
	}
	fmt.Fprintf(&sb, "Error   : %s\n", errString)
	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			fmt.Fprintf(&sb, "[%d]: %s\n", i, line)
		}
	}
	sb.WriteString("=====================================================\n")
	return sb.String()
}
