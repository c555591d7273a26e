package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSNCarriesPoolOptions(t *testing.T) {
	got := dsn(Options{User: "root", Pass: "pw", Host: "db", Port: "3306", Name: "proyecto_golden", TLS: true, Timeout: 3 * time.Second})

	assert.Contains(t, got, "root:pw@tcp(db:3306)/proyecto_golden")
	assert.Contains(t, got, "parseTime=true")
	assert.Contains(t, got, "tls=skip-verify")
	assert.Contains(t, got, "timeout=3s")
	assert.Contains(t, got, "charset=utf8mb4")
}

func TestGatewayConnReleasesToPool(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	gw := New(db)

	conn, err := gw.Conn(context.Background())
	require.NoError(t, err)
	require.NoError(t, conn.Close())
	assert.Equal(t, 0, db.Stats().InUse)

	mock.ExpectPing()
	require.NoError(t, gw.Ping(context.Background()))

	mock.ExpectClose()
	require.NoError(t, gw.Close())
	require.NoError(t, mock.ExpectationsWereMet())

	_, err = gw.Conn(context.Background())
	assert.Error(t, err)
}

func TestNilGateway(t *testing.T) {
	var gw *Gateway
	_, err := gw.Conn(context.Background())
	assert.Error(t, err)
	assert.NoError(t, gw.Close())
}
