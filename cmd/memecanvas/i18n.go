// Package main provides localization for the memecanvas CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Put captions on meme templates.": "ミームテンプレートにキャプションを付けます。",
		"memecanvas version %s":           "memecanvas バージョン %s",

		// Edit command
		"Template: %s":                "テンプレート: %s",
		"Saved %s":                    "%s に保存しました",
		"(path copied to clipboard)":  "(パスをクリップボードにコピーしました)",
		"Size":                        "サイズ",
		"Top text":                    "上のテキスト",
		"Bottom text":                 "下のテキスト",
		"New text":                    "新しいテキスト",
		"%d texts":                    "テキスト %d 件",
		"ctrl+n/p template · ctrl+t mode · pgup/pgdn size · enter add · ctrl+x remove · ctrl+s save · esc quit": "ctrl+n/p テンプレート · ctrl+t モード · pgup/pgdn サイズ · enter 追加 · ctrl+x 削除 · ctrl+s 保存 · esc 終了",

		// Summary
		"Render Summary":      "レンダリング概要",
		"Template":            "テンプレート",
		"Source":              "ソース",
		"Placeholder":         "プレースホルダー",
		"Canvas Size":         "キャンバスサイズ",
		"Captions":            "キャプション",
		"Mode":                "モード",
		"Font Size":           "フォントサイズ",
		"Top Text":            "上のテキスト",
		"Bottom Text":         "下のテキスト",
		"Text":                "テキスト",
		"Output":              "出力",
		"File":                "ファイル",
		"Image Size":          "画像サイズ",
		"Load Time":           "読み込み時間",
		"Render Time":         "レンダリング時間",
		"Generated":           "生成日時",
		"Generated by":        "生成元",
		"Item":                "項目",
		"Value":               "値",
		"None":                "なし",
		"2006-01-02 15:04:05": "2006年01月02日 15:04:05",
	})
}
