// Relay entry point: loads config, builds data source + transport +
// sensor, runs the delivery worker and supervises graceful shutdown.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/daemon"
	"github.com/juju/errors"
	"github.com/mattn/go-isatty"
	"github.com/temoto/alive/v2"

	"github.com/sensorlab/relay/helpers"
	"github.com/sensorlab/relay/internal/sensor"
	"github.com/sensorlab/relay/internal/source"
	"github.com/sensorlab/relay/internal/state"
	"github.com/sensorlab/relay/internal/transport"
	"github.com/sensorlab/relay/log2"
)

var BuildVersion string = "unknown" // set by ldflags

const envRunDuration = "RUN_DURATION_SECONDS"

func main() {
	flagConfig := flag.String("config", "relay.hcl", "")
	flag.Parse()

	log := log2.NewStderr(log2.LInfo)
	if sdnotify(log, "STATUS=init\n") {
		// under systemd, journal already stamps time
		log.SetFlags(log2.LServiceFlags)
	} else if isatty.IsTerminal(os.Stderr.Fd()) {
		log.SetFlags(log2.LInteractiveFlags)
	} else {
		log.SetFlags(log2.LStdFlags)
	}
	log.Infof("relay version=%s starting", BuildVersion)

	var errCount uint32
	log.SetErrorFunc(func(error) { atomic.AddUint32(&errCount, 1) })

	config := state.MustReadConfig(log, new(state.OsFullReader), *flagConfig)

	src, err := source.New(config.Source, log)
	if err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
	trans, err := transport.Make(config.Transport)
	if err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
	sen, err := sensor.New(config.Sensor, log, src, trans)
	if err != nil {
		log.Fatal(errors.ErrorStack(err))
	}

	a := alive.NewAlive()

	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigch
		log.Infof("signal=%v stopping", sig)
		a.Stop()
	}()

	if !a.Add(1) {
		log.Fatal("code error stopped before worker start")
	}
	go worker(a, log, sen)

	sdnotify(log, daemon.SdNotifyReady)

	heartbeat := helpers.IntSecondDefault(config.HeartbeatSec, 60*time.Second)
	hbt := time.NewTicker(heartbeat)
	defer hbt.Stop()
	var deadline <-chan time.Time
	if d := envDurationSeconds(envRunDuration); d > 0 {
		log.Infof("will stop after %s (%s)", d, envRunDuration)
		deadline = time.After(d)
	}

	stopch := a.StopChan()
	for a.IsRunning() {
		select {
		case <-stopch:

		case <-hbt.C:
			log.Infof("heartbeat %s errors=%d", sen.Stat().String(), atomic.LoadUint32(&errCount))

		case <-deadline:
			log.Infof("run duration reached, stopping")
			a.Stop()
		}
	}
	a.Wait()
	log.Infof("graceful stop")
}

// worker drives one sensor: connect → run → close. Any error is fatal to
// the whole process; continuing with a dead transport would silently
// drop data.
func worker(a *alive.Alive, log *log2.Log, sen *sensor.Sensor) {
	defer a.Done()
	// handle release on every exit path; Close is idempotent
	defer sen.Close()

	if err := sen.Connect(context.Background()); err != nil {
		log.Error(errors.ErrorStack(err))
		a.Stop()
		return
	}
	if err := sen.Run(a); err != nil {
		log.Error(errors.ErrorStack(err))
		a.Stop()
	}
}

func sdnotify(log *log2.Log, s string) bool {
	ok, err := daemon.SdNotify(false, s)
	if err != nil {
		log.Fatal("sdnotify: ", errors.ErrorStack(err))
	}
	return ok
}

func envDurationSeconds(key string) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}
