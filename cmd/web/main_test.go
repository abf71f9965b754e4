package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Lenon69/MegJoniShop/internal/testutil"
)

func runCLI(t *testing.T, env map[string]string, args ...string) (string, string, error) {
	t.Helper()

	if env == nil {
		env = map[string]string{}
	}
	cmd := newRootCmdWithOptions(&rootOptions{env: env})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--env-file", ""))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRenderCommand(t *testing.T) {
	out, errOut, err := runCLI(t, map[string]string{"MEGJONI_COPYRIGHT_YEAR": "2025"}, "render", "/category/woman")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	require.Contains(t, errOut, "match=exact")

	doc := testutil.ParseHTML(t, []byte(out))
	require.Equal(t, []string{"Elegancka Sukienka", "Jeansy Vintage"}, testutil.Texts(doc.Find("main article.product-item h3")))
	require.Equal(t, "2025", doc.Find("#current-year").Text())
}

func TestRenderCommandFallback(t *testing.T) {
	out, errOut, err := runCLI(t, nil, "render", "/does-not-exist")
	require.NoError(t, err)
	require.Contains(t, out, "Strona nie istnieje.")
	require.Contains(t, errOut, "match=fallback")
}

func TestRenderCommandUsesCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	yaml := "currency: PLN\ncategories:\n  sale:\n    - name: Płaszcz\n      price: \"120.00\"\n      image: /plaszcz.jpg\n      detail_path: /product/plaszcz\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	out, _, err := runCLI(t, map[string]string{"MEGJONI_CATALOG_FILE": path}, "render", "/sale")
	require.NoError(t, err)
	doc := testutil.ParseHTML(t, []byte(out))
	require.Equal(t, []string{"Płaszcz"}, testutil.Texts(doc.Find("main article.product-item h3")))
}

func TestRoutesCommand(t *testing.T) {
	out, _, err := runCLI(t, nil, "routes")
	require.NoError(t, err)
	for _, p := range []string{"/category/woman", "/new-arrivals", "/privacy", "Wyprzedaż"} {
		require.Contains(t, out, p)
	}
}

func TestInvalidConfigFails(t *testing.T) {
	_, _, err := runCLI(t, map[string]string{"MEGJONI_SITE_URL": "megjoni"}, "routes")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Site.URL")
}
