// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractInText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []InText
	}{
		{
			name: "single and paired authors with page",
			text: "(Aydın, 2020) ve (Aydın ve Demir, 2021, s. 45)",
			want: []InText{
				{Author: "Aydın", Year: "2020"},
				{Author: "Aydın ve Demir", Year: "2021", Page: "45"},
			},
		},
		{
			name: "page range and english conjunction",
			text: "bkz. (Smith & Jones, 2019, s. 12-18).",
			want: []InText{{Author: "Smith & Jones", Year: "2019", Page: "12-18"}},
		},
		{
			name: "no citations",
			text: "Bu paragrafta atıf yok (2020).",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractInText(tt.text))
		})
	}
}

func TestInText_String(t *testing.T) {
	assert.Equal(t, "(Aydın, 2020)", InText{Author: "Aydın", Year: "2020"}.String())
	assert.Equal(t, "(Aydın, 2020, s. 4)", InText{Author: "Aydın", Year: "2020", Page: "4"}.String())
}

func TestExtractDOIs(t *testing.T) {
	text := "Bkz. https://doi.org/10.1080/00043079.2019.1234567. Ayrıca 10.2307/3051234 ve yine 10.1080/00043079.2019.1234567;"
	assert.Equal(t, []string{"10.1080/00043079.2019.1234567", "10.2307/3051234"}, ExtractDOIs(text))
}

func TestCheckEtAl(t *testing.T) {
	issues := CheckEtAl("Önceki çalışmalar (Yılmaz et al., 2018) ve (Kaya, 2019) ile (Smith et al., 2020).")
	assert.Len(t, issues, 2)
	assert.Contains(t, issues[0], "(Yılmaz et al., 2018)")
	assert.Contains(t, issues[1], "(Smith et al., 2020)")

	assert.Empty(t, CheckEtAl("Smith et al. gösterdi."))
}

func TestCheckCaptions(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantCount int
		wantSub   string
	}{
		{
			name:      "well-formed captions",
			text:      "Metin.\nGörsel 1. Osman Hamdi Bey, Kaplumbağa Terbiyecisi, 1906, Tuval üzerine yağlıboya.\nGörsel 2. Abidin Dino, Kuşlar, 1970.",
			wantCount: 0,
		},
		{
			name:      "no captions",
			text:      "Sadece metin var.",
			wantCount: 1,
			wantSub:   NoCaptionsIssue,
		},
		{
			name:      "malformed caption line",
			text:      "Görsel 1. Fahrelnissa Zeid, Soyut, 1950.\nGörsel 2: eksik biçim",
			wantCount: 1,
			wantSub:   "line 2: malformed caption",
		},
		{
			name:      "numbering gap",
			text:      "Görsel 1. Bir.\nGörsel 3. Üç.",
			wantCount: 1,
			wantSub:   "caption numbered Görsel 3, expected Görsel 2",
		},
		{
			name:      "figure reference in prose is not a caption",
			text:      "Görsel 1. Nuri İyem, Portre, 1960.\nGörsel 1'de görüldüğü gibi renkler koyudur.",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := CheckCaptions(tt.text)
			assert.Len(t, issues, tt.wantCount, "%v", issues)
			if tt.wantSub != "" && len(issues) > 0 {
				assert.Contains(t, issues[0], tt.wantSub)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	text := "Minyatür geleneği (Aydın, 2020, s. 5) (Kaya et al., 2017).\nGörsel 1. Levnî, Surname-i Vehbî, 1720, Minyatür.\ndoi: 10.1000/xyz123"
	r := Check(text)

	assert.Equal(t, []InText{{Author: "Aydın", Year: "2020", Page: "5"}}, r.Citations)
	assert.Equal(t, []string{"10.1000/xyz123"}, r.DOIs)
	assert.Len(t, r.Issues, 1)
	assert.True(t, r.HasIssues())

	clean := Check("Görsel 1. Levnî, Portre.")
	assert.False(t, clean.HasIssues())
}
