package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordkit/reclist/config"
	"github.com/recordkit/reclist/dt"
	"github.com/recordkit/reclist/ers"
	"github.com/recordkit/reclist/recfile"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reclist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestConfig(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		conf := config.Default()
		assert.Equal(t, dt.Doubly, conf.Topology)
		assert.Equal(t, recfile.Counted, conf.SaveFormat)
		assert.NoError(t, conf.Validate())
	})
	t.Run("Missing", func(t *testing.T) {
		conf, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), conf)
	})
	t.Run("Overrides", func(t *testing.T) {
		path := write(t, "data_dir: records\ntopology: singly-circular\nsave_format: stream\ndescending: true\nmax_records: 50\nlog_level: debug\n")
		conf, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(filepath.Dir(path), "records"), conf.DataDir)
		assert.Equal(t, dt.SinglyCircular, conf.Topology)
		assert.Equal(t, recfile.Stream, conf.SaveFormat)
		assert.True(t, conf.Descending)
		assert.Equal(t, 50, conf.MaxRecords)
		assert.Equal(t, "debug", conf.LogLevel)
	})
	t.Run("AbsoluteDataDir", func(t *testing.T) {
		dir := t.TempDir()
		conf, err := config.Load(write(t, "data_dir: "+dir+"\n"))
		require.NoError(t, err)
		assert.Equal(t, dir, conf.DataDir)
	})
	t.Run("UnknownTopology", func(t *testing.T) {
		_, err := config.Load(write(t, "topology: triangle\n"))
		assert.ErrorIs(t, err, ers.ErrMalformedConfiguration)
	})
	t.Run("Syntax", func(t *testing.T) {
		_, err := config.Load(write(t, "topology: [\n"))
		assert.ErrorIs(t, err, ers.ErrMalformedConfiguration)
	})
	t.Run("Validate", func(t *testing.T) {
		conf := config.Default()
		conf.MaxRecords = -1
		conf.LogLevel = "loud"
		conf.DataDir = ""

		err := conf.Validate()
		assert.ErrorIs(t, err, ers.ErrMalformedConfiguration)
		assert.Contains(t, err.Error(), "max_records")
		assert.Contains(t, err.Error(), "log_level")
		assert.Contains(t, err.Error(), "data_dir")
	})
}
