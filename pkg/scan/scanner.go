// Package scan tokenizes markup and recovers the attributes of one opening
// tag, with the positions editors need to report on them.
package scan

import (
	"regexp"
	"strings"
)

// TokenType identifies a markup token.
type TokenType int

const (
	TokenUnknown TokenType = iota
	TokenStartCommentTag
	TokenComment
	TokenEndCommentTag
	TokenStartTagOpen
	TokenStartTagClose
	TokenStartTagSelfClose
	TokenStartTag
	TokenEndTagOpen
	TokenEndTagClose
	TokenEndTag
	TokenDelimiterAssign
	TokenAttributeName
	TokenAttributeValue
	TokenStartDoctypeTag
	TokenDoctype
	TokenEndDoctypeTag
	TokenContent
	TokenWhitespace
	TokenScript
	TokenStyles
	TokenEOS
)

// State is the scanner state between two tokens.
type State int

const (
	StateWithinContent State = iota
	StateAfterOpeningStartTag
	StateAfterOpeningEndTag
	StateWithinDoctype
	StateWithinTag
	StateWithinEndTag
	StateWithinComment
	StateWithinScriptContent
	StateWithinStyleContent
	StateAfterAttributeName
	StateBeforeAttributeValue
)

var (
	elementNamePattern   = regexp.MustCompile(`^[_:\w][_:\w\-.\d]*`)
	attributeNamePattern = regexp.MustCompile(`^[^\s"'></=\x00-\x0F\x7F\x80-\x9F]*`)
	unquotedValuePattern = regexp.MustCompile("^[^\\s\"'`=<>]+")
	doctypePattern       = regexp.MustCompile(`(?i)^!doctype`)
	scriptEndPattern     = regexp.MustCompile(`(?i)</script\s*/?>?`)
	styleEndPattern      = regexp.MustCompile(`(?i)</style`)
)

// Scanner is a forgiving HTML token scanner. It never fails: malformed input
// yields Unknown tokens and scanning always progresses to EOS.
type Scanner struct {
	text  string
	pos   int
	state State

	tokenOffset int
	tokenType   TokenType

	lastTag          string
	hasSpaceAfterTag bool
}

// NewScanner returns a scanner positioned at the start of text.
func NewScanner(text string) *Scanner {
	return &Scanner{text: text, state: StateWithinContent, tokenType: TokenUnknown}
}

// Scan advances to the next token and returns its type.
func (s *Scanner) Scan() TokenType {
	offset := s.pos
	token := s.internalScan()
	if token != TokenEOS && offset == s.pos && token != TokenStartTagClose {
		s.pos++
		s.tokenOffset = offset
		s.tokenType = TokenUnknown
		return TokenUnknown
	}
	return token
}

// TokenType returns the type of the current token.
func (s *Scanner) TokenType() TokenType { return s.tokenType }

// TokenOffset returns the offset of the current token.
func (s *Scanner) TokenOffset() int { return s.tokenOffset }

// TokenLength returns the length of the current token.
func (s *Scanner) TokenLength() int { return s.pos - s.tokenOffset }

// TokenEnd returns the offset just past the current token.
func (s *Scanner) TokenEnd() int { return s.pos }

// TokenText returns the text of the current token.
func (s *Scanner) TokenText() string { return s.text[s.tokenOffset:s.pos] }

// State returns the state the scanner will resume from.
func (s *Scanner) State() State { return s.state }

func (s *Scanner) finish(offset int, t TokenType) TokenType {
	s.tokenOffset = offset
	s.tokenType = t
	return t
}

func (s *Scanner) eos() bool { return s.pos >= len(s.text) }

func (s *Scanner) peek() byte {
	if s.eos() {
		return 0
	}
	return s.text[s.pos]
}

func (s *Scanner) advanceIfChar(c byte) bool {
	if s.peek() == c && !s.eos() {
		s.pos++
		return true
	}
	return false
}

func (s *Scanner) advanceIfChars(chars string) bool {
	if strings.HasPrefix(s.text[s.pos:], chars) {
		s.pos += len(chars)
		return true
	}
	return false
}

func (s *Scanner) advanceIfPattern(re *regexp.Regexp) string {
	match := re.FindString(s.text[s.pos:])
	s.pos += len(match)
	return match
}

// advanceUntil moves to the next occurrence of chars, or to the end of input.
func (s *Scanner) advanceUntil(chars string) bool {
	if i := strings.Index(s.text[s.pos:], chars); i >= 0 {
		s.pos += i
		return true
	}
	s.pos = len(s.text)
	return false
}

func (s *Scanner) advanceUntilPattern(re *regexp.Regexp) bool {
	if loc := re.FindStringIndex(s.text[s.pos:]); loc != nil {
		s.pos += loc[0]
		return true
	}
	s.pos = len(s.text)
	return false
}

func (s *Scanner) skipWhitespace() bool {
	start := s.pos
	for !s.eos() {
		switch s.text[s.pos] {
		case ' ', '\t', '\n', '\r', '\f':
			s.pos++
			continue
		}
		break
	}
	return s.pos > start
}

func (s *Scanner) internalScan() TokenType {
	offset := s.pos
	if s.eos() {
		return s.finish(offset, TokenEOS)
	}

	switch s.state {
	case StateWithinComment:
		if s.advanceIfChars("-->") {
			s.state = StateWithinContent
			return s.finish(offset, TokenEndCommentTag)
		}
		s.advanceUntil("-->")
		return s.finish(offset, TokenComment)

	case StateWithinDoctype:
		if s.advanceIfChar('>') {
			s.state = StateWithinContent
			return s.finish(offset, TokenEndDoctypeTag)
		}
		s.advanceUntil(">")
		return s.finish(offset, TokenDoctype)

	case StateWithinContent:
		if s.advanceIfChar('<') {
			if s.peek() == '!' {
				if s.advanceIfChars("!--") {
					s.state = StateWithinComment
					return s.finish(offset, TokenStartCommentTag)
				}
				if s.advanceIfPattern(doctypePattern) != "" {
					s.state = StateWithinDoctype
					return s.finish(offset, TokenStartDoctypeTag)
				}
			}
			if s.advanceIfChar('/') {
				s.state = StateAfterOpeningEndTag
				return s.finish(offset, TokenEndTagOpen)
			}
			s.state = StateAfterOpeningStartTag
			return s.finish(offset, TokenStartTagOpen)
		}
		s.advanceUntil("<")
		return s.finish(offset, TokenContent)

	case StateAfterOpeningEndTag:
		if s.advanceIfPattern(elementNamePattern) != "" {
			s.state = StateWithinEndTag
			return s.finish(offset, TokenEndTag)
		}
		if s.skipWhitespace() {
			return s.finish(offset, TokenWhitespace)
		}
		s.state = StateWithinEndTag
		s.advanceUntil(">")
		if offset < s.pos {
			return s.finish(offset, TokenUnknown)
		}
		return s.internalScan()

	case StateWithinEndTag:
		if s.skipWhitespace() {
			return s.finish(offset, TokenWhitespace)
		}
		if s.advanceIfChar('>') {
			s.state = StateWithinContent
			return s.finish(offset, TokenEndTagClose)
		}
		s.advanceUntil(">")
		return s.finish(offset, TokenUnknown)

	case StateAfterOpeningStartTag:
		if name := s.advanceIfPattern(elementNamePattern); name != "" {
			s.lastTag = strings.ToLower(name)
			s.hasSpaceAfterTag = false
			s.state = StateWithinTag
			return s.finish(offset, TokenStartTag)
		}
		if s.skipWhitespace() {
			return s.finish(offset, TokenWhitespace)
		}
		s.state = StateWithinContent
		s.advanceUntil("<")
		if offset < s.pos {
			return s.finish(offset, TokenUnknown)
		}
		return s.internalScan()

	case StateWithinTag:
		if s.skipWhitespace() {
			s.hasSpaceAfterTag = true
			return s.finish(offset, TokenWhitespace)
		}
		if s.hasSpaceAfterTag {
			if name := s.advanceIfPattern(attributeNamePattern); name != "" {
				s.state = StateAfterAttributeName
				s.hasSpaceAfterTag = false
				return s.finish(offset, TokenAttributeName)
			}
		}
		if s.advanceIfChars("/>") {
			s.state = StateWithinContent
			return s.finish(offset, TokenStartTagSelfClose)
		}
		if s.advanceIfChar('>') {
			switch s.lastTag {
			case "script":
				s.state = StateWithinScriptContent
			case "style":
				s.state = StateWithinStyleContent
			default:
				s.state = StateWithinContent
			}
			return s.finish(offset, TokenStartTagClose)
		}
		if s.peek() == '<' {
			// A new tag opens before this one closed: emit an empty close.
			s.state = StateWithinContent
			return s.finish(offset, TokenStartTagClose)
		}
		s.pos++
		return s.finish(offset, TokenUnknown)

	case StateAfterAttributeName:
		if s.skipWhitespace() {
			s.hasSpaceAfterTag = true
			return s.finish(offset, TokenWhitespace)
		}
		if s.advanceIfChar('=') {
			s.state = StateBeforeAttributeValue
			return s.finish(offset, TokenDelimiterAssign)
		}
		s.state = StateWithinTag
		return s.internalScan()

	case StateBeforeAttributeValue:
		if s.skipWhitespace() {
			return s.finish(offset, TokenWhitespace)
		}
		if value := s.advanceIfPattern(unquotedValuePattern); value != "" {
			if s.peek() == '>' && strings.HasSuffix(value, "/") {
				s.pos--
				value = value[:len(value)-1]
			}
			if value != "" {
				s.state = StateWithinTag
				s.hasSpaceAfterTag = false
				return s.finish(offset, TokenAttributeValue)
			}
		}
		if quote := s.peek(); quote == '\'' || quote == '"' {
			s.pos++
			if s.advanceUntil(string(quote)) {
				s.pos++
			}
			s.state = StateWithinTag
			s.hasSpaceAfterTag = false
			return s.finish(offset, TokenAttributeValue)
		}
		s.state = StateWithinTag
		s.hasSpaceAfterTag = false
		return s.internalScan()

	case StateWithinScriptContent:
		s.advanceUntilPattern(scriptEndPattern)
		s.state = StateWithinContent
		if offset < s.pos {
			return s.finish(offset, TokenScript)
		}
		return s.internalScan()

	case StateWithinStyleContent:
		s.advanceUntilPattern(styleEndPattern)
		s.state = StateWithinContent
		if offset < s.pos {
			return s.finish(offset, TokenStyles)
		}
		return s.internalScan()
	}

	s.pos++
	s.state = StateWithinContent
	return s.finish(offset, TokenUnknown)
}
