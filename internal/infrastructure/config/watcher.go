package config

import (
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/blockrules/internal/logging"
)

// reloadDebounce collapses the bursts of events editors produce on save.
const reloadDebounce = 150 * time.Millisecond

// Watch starts watching the config file and reloads it after changes settle.
// An invalid file is logged and the previous configuration stays active.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		m.mu.Lock()
		defer m.mu.Unlock()
		if m.reloadTimer != nil {
			m.reloadTimer.Stop()
		}
		m.reloadTimer = time.AfterFunc(reloadDebounce, m.applyChange)
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// applyChange reloads the config and notifies callbacks on success.
func (m *Manager) applyChange() {
	log := logging.NewFromEnv().With().Str("component", "config").Logger()

	m.mu.Lock()
	if err := m.reload(); err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Str("file", m.configFile).Msg("ignoring invalid config change")
		return
	}
	log.Debug().Str("file", m.configFile).Int("sources", len(m.config.Sources)).Msg("config reloaded")
	m.notifyCallbacksLocked()
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write. Releases the lock before calling callbacks.
func (m *Manager) notifyCallbacksLocked() {
	config := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(config)
	}
}

// OnConfigChange registers a callback called with every successfully
// reloaded configuration.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}
