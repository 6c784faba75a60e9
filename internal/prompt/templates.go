// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import "text/template"

// preambleTmpl is rendered ahead of every request body. It carries the corpus
// statistics the model should imitate.
var preambleTmpl = template.Must(template.New("preamble").Parse(`Sen bir akademik makale yazarısın. Türk sanat tarihi ve eleştiri dergilerine yazıyorsun.

STİL PROFİLİ:
- Ortalama makale uzunluğu: {{.AvgLength}} kelime
- Ortalama cümle uzunluğu: {{.AvgSentence}} kelime
- Leksikal çeşitlilik: {{.LexicalDiversity}}
- Toplam doküman sayısı: {{.DocCount}}

YAZIM KURALLARI:
1. APA-7 formatında atıf yap
2. Metin içi atıf: (Yazar, Yıl) veya (Yazar, Yıl, s. X)
3. Her görseli şöyle referansla: "Görsel X. Sanatçı, Eser Adı, Yıl, Teknik, Kaynak."
4. Akademik ama akıcı bir dil kullan
5. Paragraflar arası geçişleri güçlendir

SIK KULLANILAN TERİMLER:
{{.TopTerms}}`))

// outlineTmpl asks for a JSON article outline. The JSON block is the output
// contract that outline.Parse checks against.
var outlineTmpl = template.Must(template.New("outline").Parse(`{{.Preamble}}

GÖREV: Aşağıdaki konu için detaylı bir makale taslağı oluştur.

KONU: {{.Topic}}

TASLAK ŞEKLİ:
{
  "title": "Makale başlığı",
  "abstract_tr": "150-200 kelimelik Türkçe özet",
  "abstract_en": "150-200 kelimelik İngilizce özet",
  "keywords_tr": ["anahtar", "kelimeler"],
  "keywords_en": ["key", "words"],
  "sections": [
    {
      "title": "Giriş",
      "subsections": ["Alt başlık 1", "Alt başlık 2"],
      "estimated_words": 800,
      "key_points": ["Nokta 1", "Nokta 2"],
      "required_citations": 3
    }
  ],
  "required_visuals": [
    {
      "number": 1,
      "description": "Görsel açıklaması",
      "suggested_source": "Kaynak önerisi"
    }
  ],
  "min_references": 25
}

SADECE JSON döndür, başka bir şey yazma.`))

var sectionTmpl = template.Must(template.New("section").Parse(`{{.Preamble}}

MAKALE BAĞLAMI:
Başlık: {{.ArticleTitle}}
Bölüm: {{.SectionTitle}}

BÖLÜM GEREKSİNİMLERİ:
- Tahmini uzunluk: {{.EstimatedWords}} kelime
- Ana noktalar: {{.KeyPoints}}
- Minimum atıf: {{.MinCitations}} adet

GÖREV: Bu bölümü yaz.

KURALLAR:
1. Atıfları eksiksiz yap: (Yazar, Yıl, s. X)
2. Akademik ama sıkıcı olma
3. Her paragraf 4-6 cümle olsun
4. Geçişleri güçlendir ("Bu bağlamda", "Diğer yandan", vb.)

BÖLÜM METNİ:`))

var citationTmpl = template.Must(template.New("citation").Parse(`{{.Preamble}}

GÖREV: Aşağıdaki konu için akademik kaynakça listesi oluştur (APA-7).

KONU: {{.Topic}}
GEREKEN KAYNAK SAYISI: {{.MinReferences}}

KAYNAK TİPLERİ (dengeli dağılım):
- Kitaplar: %30
- Makale: %40
- Katalog/Sergi: %20
- Web kaynakları: %10

FORMAT:
Her kaynak şu formatta:
{
  "type": "book|article|catalog|web",
  "apa_citation": "Tam APA-7 formatında kaynak",
  "author": "Yazar adı",
  "year": "2020",
  "title": "Eser başlığı",
  "doi": "10.xxxx/xxxxx (varsa)"
}

SADECE JSON array döndür.`))
