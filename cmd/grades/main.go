package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"example.com/wordgrade/pkg/config"
	"example.com/wordgrade/pkg/console"
	"example.com/wordgrade/pkg/grades"
	"example.com/wordgrade/pkg/logs"
)

// grades asks for a number of subjects and one grade per subject, then
// prints the average and its letter grade. A grade above 20 ends the run
// early with "Invalid Grade".
func main() {
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
	log := logs.New(cfg)
	code := run(os.Stdin, os.Stdout, os.Stderr, cfg.InvalidPause, log)
	log.Close()
	os.Exit(code)
}

func run(in io.Reader, out, errOut io.Writer, pause time.Duration, log *logs.Logger) int {
	p := console.New(in, out)
	res, err := grades.NewSession(p).Run()
	switch {
	case err == nil:
	case errors.Is(err, grades.ErrInvalidGrade):
		log.Event("invalid_grade", map[string]any{"accepted": len(res.Grades), "reason": err.Error()})
		if err := p.Println("Invalid Grade"); err != nil {
			fmt.Fprintln(errOut, "write error:", err)
			return 1
		}
		time.Sleep(pause)
		return 0
	default:
		log.Error("grades", err)
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}
	log.Event("result", map[string]any{
		"subjects": len(res.Grades),
		"average":  res.Average,
		"letter":   string(res.Letter),
	})
	if err := p.Println(grades.Format(res)); err != nil {
		fmt.Fprintln(errOut, "write error:", err)
		return 1
	}
	return 0
}
