package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Editor
		"Selecting template %s":                            "テンプレート %s を選択中",
		"Unknown template %s":                              "不明なテンプレート %s",
		"Template %s loaded: %dx%d shown at %dx%d":         "テンプレート %s を読み込みました: %dx%d を %dx%d で表示",
		"Failed to load template %s: %s":                   "テンプレート %s の読み込みに失敗しました: %s",
		"Failed to load image. Using placeholder instead.": "画像の読み込みに失敗しました。代わりにプレースホルダーを使用します。",
		"Discarding stale load of %s":                      "古い読み込み結果 %s を破棄します",
		"Mode switched to %s":                              "モードを %s に切り替えました",
		"Added text %d: %s":                                "テキスト %d を追加しました: %s",
		"Removed text %d":                                  "テキスト %d を削除しました",
		"Please select a template first!":                  "先にテンプレートを選択してください",

		// Engine
		"Repaint %d: %dx%d, %s mode":      "再描画 %d: %dx%d, %s モード",
		"Failed to save debug output: %s": "デバッグ出力の保存に失敗しました: %s",

		// Interaction
		"Grabbed text %d at (%.0f, %.0f)":  "テキスト %d を (%.0f, %.0f) でつかみました",
		"Released text %d at (%.0f, %.0f)": "テキスト %d を (%.0f, %.0f) で離しました",

		// Loader
		"Decoding %s":                   "%s をデコード中",
		"Generating placeholder for %s": "%s のプレースホルダーを生成中",

		// Render
		"Loading template %s":            "テンプレート %s を読み込み中",
		"Failed to compose captions: %s": "キャプションの合成に失敗しました: %s",
		"Skipped %d blank captions":      "空のキャプション %d 件をスキップしました",
		"Placed text %d at (%.0f, %.0f)": "テキスト %d を (%.0f, %.0f) に配置しました",
		"Summary saved to %s":            "サマリーを %s に保存しました",
		"Failed to write summary: %s":    "サマリーの書き込みに失敗しました: %s",
		"Interrupted, shutting down...":  "中断されました。終了します...",

		// Export
		"Exported %s (%d bytes)":     "%s を書き出しました (%d バイト)",
		"Output saved to %s":         "出力を %s に保存しました",
		"Failed to write output: %s": "出力の書き込みに失敗しました: %s",
	})
}
