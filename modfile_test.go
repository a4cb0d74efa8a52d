package backend_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mod/modfile"
)

const modulePath = "github.com/wix-messenger/backend"

func parseGoMod(t *testing.T) *modfile.File {
	t.Helper()

	data, err := os.ReadFile("go.mod")
	require.NoError(t, err)

	f, err := modfile.Parse("go.mod", data, nil)
	require.NoError(t, err)
	return f
}

func TestGoMod_ModulePathMatchesImports(t *testing.T) {
	f := parseGoMod(t)
	require.NotNil(t, f.Module)
	assert.Equal(t, modulePath, f.Module.Mod.Path)
}

func TestGoMod_DirectRequiresAreImported(t *testing.T) {
	f := parseGoMod(t)

	// пакеты, которые раньше числились прямыми зависимостями,
	// но в коде сервисов не импортируются
	unused := []string{
		"github.com/golang-jwt/jwt/v5",
		"github.com/redis/go-redis/v9",
		"github.com/streadway/amqp",
		"github.com/testcontainers/testcontainers-go/modules/postgres",
		"golang.org/x/crypto",
		"golang.org/x/time",
		"google.golang.org/grpc",
		"google.golang.org/protobuf",
	}

	for _, r := range f.Require {
		if r.Indirect {
			continue
		}
		assert.NotContains(t, unused, r.Mod.Path,
			"module %s is required directly but never imported", r.Mod.Path)
		assert.False(t, strings.HasPrefix(modulePath, r.Mod.Path), "module must not require itself")
	}
}
