package parser

import "testing"

func TestNormalizePunctuation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "half-width to full-width",
			in:   "经营者应当遵守法律,维护秩序.",
			want: "经营者应当遵守法律，维护秩序。",
		},
		{
			name: "mixed brackets",
			in:   "(一)虚假宣传;",
			want: "（一）虚假宣传；",
		},
		{
			name: "inner whitespace dropped",
			in:   "经营者 应当　遵守",
			want: "经营者应当遵守",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePunctuation(tt.in); got != tt.want {
				t.Errorf("NormalizePunctuation(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRepairLineBreaks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "mid-sentence break merged",
			in:   "经营者在市场交易中，应当遵循自愿、平等、\n公平、诚实信用的原则。",
			want: "经营者在市场交易中，应当遵循自愿、平等、公平、诚实信用的原则。",
		},
		{
			name: "terminated line kept",
			in:   "第一款内容。\n第二款内容。",
			want: "第一款内容。\n第二款内容。",
		},
		{
			name: "enumeration item not merged",
			in:   "下列行为属于不正当竞争\n（一）假冒他人注册商标",
			want: "下列行为属于不正当竞争\n（一）假冒他人注册商标",
		},
		{
			name: "blank lines dropped",
			in:   "第一句。\n\n\n第二句。",
			want: "第一句。\n第二句。",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RepairLineBreaks(tt.in); got != tt.want {
				t.Errorf("RepairLineBreaks(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanBody(t *testing.T) {
	in := "应当遵循自愿、平等、\n公平的原则,\n不得损害消费者权益.\n（一） 假冒行为;\n（二）虚假 宣传;"
	want := "应当遵循自愿、平等、公平的原则，不得损害消费者权益。\n（一）假冒行为；\n（二）虚假宣传；"

	if got := CleanBody(in); got != want {
		t.Errorf("CleanBody() = %q, want %q", got, want)
	}
}
