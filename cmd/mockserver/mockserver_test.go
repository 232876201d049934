package mockserver

import (
	"io"
	"testing"

	"cardexcli/src/database"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart_UnknownDriverFailsBeforeServing(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	s := &MockServer{
		Log:      logrus.NewEntry(log).WithField("cmd", "mockserver"),
		Port:     "0",
		DBConfig: database.Config{Driver: "bogus"},
	}

	err := s.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"bogus"`)
}
