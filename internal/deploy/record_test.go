package deploy

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() *Record {
	return &Record{
		Network:         "sepolia",
		ChainID:         11155111,
		ContractAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		DeployerAddress: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		TransactionHash: "0xc0ffee254729296a45a3885639AC7E10F9d54979c0ffee254729296a45a38856",
		BlockNumber:     42,
		GasUsed:         2_500_000,
		GasPrice:        "1000000000",
		Timestamp:       "2026-08-28T12:00:00Z",
		ContractName:    "CertiProof",
		ContractSymbol:  "CPROOF",
		Version:         "1.0.0",
		Author:          "CertiProof",
		Contact:         "contact@certiproof.io",
	}
}

func TestRecordValidate(t *testing.T) {
	require.NoError(t, validRecord().Validate())
}

func TestRecordValidate_MissingFields(t *testing.T) {
	err := (&Record{}).Validate()
	require.Error(t, err)
	for _, field := range []string{"network", "chainId", "contractAddress", "deployerAddress", "transactionHash", "timestamp", "contractName", "contractSymbol"} {
		assert.Contains(t, err.Error(), field+" is required")
	}
}

func TestRecordFileName(t *testing.T) {
	assert.Equal(t, "sepolia-11155111.json", validRecord().FileName())
}

func TestWriteRecord_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deployments")

	path, err := WriteRecord(dir, validRecord())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sepolia-11155111.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var persisted Record
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Equal(t, *validRecord(), persisted)

	// Pretty-printed with a trailing newline.
	assert.Contains(t, string(data), "\n  \"network\": \"sepolia\",")
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestWriteRecord_Overwrites(t *testing.T) {
	dir := t.TempDir()

	first := validRecord()
	_, err := WriteRecord(dir, first)
	require.NoError(t, err)

	second := validRecord()
	second.BlockNumber = 43
	path, err := WriteRecord(dir, second)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var persisted Record
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Equal(t, uint64(43), persisted.BlockNumber)
}

func TestWriteRecord_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	record := validRecord()
	record.ContractAddress = ""
	_, err := WriteRecord(dir, record)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
