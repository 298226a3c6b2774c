package helper

import (
	"bytes"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestStyleFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Log.Warnf("released %d nodes", 3)

	line := buf.String()
	require.Contains(t, line, "WARNING")
	require.Contains(t, line, "TestStyleFormatter_Format")
	require.Contains(t, line, "- released 3 nodes\n")
}

func TestSetLevel(t *testing.T) {
	defer Log.SetLevel(logrus.InfoLevel)

	require.NoError(t, SetLevel("trace"))
	require.Equal(t, logrus.TraceLevel, Log.GetLevel())

	require.Error(t, SetLevel("loud"))
	require.Equal(t, logrus.TraceLevel, Log.GetLevel())
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Log.Debugf("hidden")
	require.Empty(t, buf.String())
}
