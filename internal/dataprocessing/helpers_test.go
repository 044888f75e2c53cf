package dataprocessing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// writeCP949 writes a fixture file in the Korean portal encoding
func writeCP949(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := transform.NewWriter(f, korean.EUCKR.NewEncoder())
	_, err = w.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return path
}

// writeUTF8BOM writes a fixture file with a UTF-8 byte order mark
func writeUTF8BOM(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	err := os.WriteFile(path, append([]byte{0xEF, 0xBB, 0xBF}, []byte(content)...), 0644)
	require.NoError(t, err)
	return path
}

const prosecutionFixture = `범죄분류,동종재범_1개월이내,동종재범_3개월이내,이종재범_1개월이내,비고
절도,10,20,5,메모
사기,3,x,2,메모
`

const kosisFixture = `범죄별(1),범죄별(2),범죄별(3),2023,2023,2023,2023
범죄별(1),범죄별(2),범죄별(3),전과없음,전과,전과,계
범죄별(1),범죄별(2),범죄별(3),소계,소계,1,소계
합계,소계,소계,400,600,350,1000
절도,소계,소계,100,200,120,300
`

const educationFixture = `범죄대분류,범죄중분류,초등학교,고등학교 졸업,대학,미상
강력범죄,살인,10,20,5,1
재산범죄,절도,7,30,9,2
`

const priorRecordFixture = `범죄대분류,범죄중분류,없음,1범,2범
강력범죄,살인,4,3,2
재산범죄,절도,11,9,6
`

const worldFixture = `Country,Rate,Follow-Up,Type,Duration
South Korea,25%,3 years,Reimprisonment,2019
Norway,20%,2 years,Reconviction,2018
France,bad,5 years,Reimprisonment,2017
Denmark,63%,18 months,Reimprisonment,2015
`
