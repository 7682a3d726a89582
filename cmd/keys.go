package cmd

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/tranvictor/basewatch/dashboard"
	"github.com/tranvictor/basewatch/networks"
)

type keyAction int

const (
	keyIgnored keyAction = iota
	keyRedraw
	keyQuit
)

const ctrlC = 0x03

// handleKey applies a key press to the dashboard.
func handleKey(d *dashboard.Dashboard, key byte, log *logrus.Entry) keyAction {
	switch key {
	case 'q', 'Q', ctrlC:
		return keyQuit
	case 'm', 'M':
		return selectNetwork(d, networks.BaseMainnet.GetName(), log)
	case 't', 'T':
		return selectNetwork(d, networks.BaseSepolia.GetName(), log)
	case 'p', 'P', ' ':
		paused := d.TogglePause()
		log.WithField("paused", paused).Info("toggled polling")
		return keyRedraw
	case '+', '=':
		d.GrowWindow()
		return keyRedraw
	case '-', '_':
		d.ShrinkWindow()
		return keyRedraw
	}
	return keyIgnored
}

func selectNetwork(d *dashboard.Dashboard, name string, log *logrus.Entry) keyAction {
	if err := d.SelectNetwork(name); err != nil {
		log.WithError(err).Warn("couldn't switch network")
		return keyIgnored
	}
	return keyRedraw
}

// readKeys feeds every byte of r to handleKey until r fails or a quit key
// is pressed. Redraw requests are dropped while one is pending.
func readKeys(r io.Reader, d *dashboard.Dashboard, log *logrus.Entry, redraw chan<- struct{}, quit func()) {
	buf := make([]byte, 16)
	for {
		n, err := r.Read(buf)
		for _, key := range buf[:n] {
			switch handleKey(d, key, log) {
			case keyQuit:
				quit()
				return
			case keyRedraw:
				select {
				case redraw <- struct{}{}:
				default:
				}
			}
		}
		if err != nil {
			if err != io.EOF {
				log.WithError(err).Debug("stopped reading keys")
			}
			return
		}
	}
}
