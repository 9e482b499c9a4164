package image

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// konlpyのネイティブ拡張ビルドはnumpyのヘッダを前提とするため、
// numpy → konlpy → 残り、の順でインストールフェーズを分ける。
// JPype1はkonlpyが引き込むので残りフェーズからも除外する。
const (
	numpyPackage     = "numpy"
	tokenizerPackage = "konlpy"
	jvmBridgePackage = "jpype1"
)

// Plan はrequirementsファイルを解析してインストール順序計画を作成する
func Plan(requirementsPath string) (*BuildPlan, error) {
	f, err := os.Open(requirementsPath)
	if err != nil {
		return nil, fmt.Errorf("❌ requirementsファイルの読み込みに失敗: %w", err)
	}
	defer f.Close()

	var numpy, tokenizer string
	var remainder []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch packageName(line) {
		case numpyPackage:
			numpy = line
		case tokenizerPackage:
			tokenizer = line
		case jvmBridgePackage:
			// konlpy側で解決されるため個別インストールしない
		default:
			remainder = append(remainder, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("❌ requirementsファイルの解析に失敗: %w", err)
	}

	if numpy == "" {
		return nil, fmt.Errorf("❌ requirementsに %s がありません（%s のビルドに必要）", numpyPackage, tokenizerPackage)
	}
	if tokenizer == "" {
		return nil, fmt.Errorf("❌ requirementsに %s がありません", tokenizerPackage)
	}

	return &BuildPlan{
		Phases: []InstallPhase{
			{Name: numpyPackage, Requirements: []string{numpy}},
			{Name: tokenizerPackage, Requirements: []string{tokenizer}},
			{Name: "remainder", Requirements: remainder},
		},
	}, nil
}

// packageName はrequirements行からパッケージ名部分を小文字で取り出す
func packageName(line string) string {
	name := line
	for _, sep := range []string{"==", ">=", "<=", "~=", "!=", ">", "<", "[", ";", " "} {
		if i := strings.Index(name, sep); i >= 0 {
			name = name[:i]
		}
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// ShowPlan はインストール順序計画を表示する
func ShowPlan(plan *BuildPlan) {
	fmt.Println("📋 pipインストール順序計画:")
	for i, phase := range plan.Phases {
		fmt.Printf("  %d. %s\n", i+1, phase.Name)
		for _, req := range phase.Requirements {
			fmt.Printf("     - %s\n", req)
		}
	}
}

// PipCommands は各フェーズのpip installコマンド文字列を返す
func (p *BuildPlan) PipCommands() []string {
	var cmds []string
	for _, phase := range p.Phases {
		if len(phase.Requirements) == 0 {
			continue
		}
		cmds = append(cmds, "pip install --no-cache-dir "+strings.Join(phase.Requirements, " "))
	}
	return cmds
}
