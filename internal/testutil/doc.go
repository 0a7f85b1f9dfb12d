// Package testutil builds on-disk fixtures for tests that need real files:
// a labelled tweet table, a small trained-model artifact and a config file
// pointing at both.
//
// Example:
//
//	dir := t.TempDir()
//	files := testutil.NewDesk(t, dir).
//		WithTweets(testutil.DefaultTweets()...).
//		Write()
//	cfg := files.ConfigPath
package testutil
