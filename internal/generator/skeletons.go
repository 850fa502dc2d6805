package generator

import "robogen/internal/artifact"

// skeletonText holds the template skeleton for each artifact kind. The
// skeletons emit Robot Framework space-separated plain text format; the
// only substitution points are sanitized parameters and catalog locators.
var skeletonText = map[artifact.Kind]string{
	artifact.KindLoginTest: `*** Settings ***
Library    SeleniumLibrary

*** Variables ***
${URL}           {{.url}}
${USERNAME}      {{.username}}
${PASSWORD}      {{.password}}
${BROWSER}       Chrome

# Selector Variables
${USERNAME_FIELD}        {{.username_field}}
${PASSWORD_FIELD}        {{.password_field}}
${LOGIN_BUTTON}          {{.login_button}}
${SUCCESS_INDICATOR}     {{.success_indicator}}
${ERROR_MESSAGE}         {{.error_message}}

*** Test Cases ***
Login Test
    [Documentation]    Test login functionality for {{.dialect}}
    [Tags]    smoke    login    {{.dialect}}
    Open Browser    ${URL}    ${BROWSER}
    Maximize Browser Window
    Input Text    ${USERNAME_FIELD}    ${USERNAME}
    Input Text    ${PASSWORD_FIELD}    ${PASSWORD}
    Click Button    ${LOGIN_BUTTON}
    ${logged_in}=    Run Keyword And Return Status
    ...    Wait Until Page Contains Element    ${SUCCESS_INDICATOR}    10s
    IF    not ${logged_in}
        Page Should Contain Element    ${ERROR_MESSAGE}
        Fail    Login did not reach the success indicator
    END
    [Teardown]    Close Browser
`,

	artifact.KindPageObject: `*** Settings ***
Library    SeleniumLibrary

*** Variables ***
# {{.dialect_upper}} Application Selectors
${LOGIN_USERNAME_FIELD}    {{.username_field}}
${LOGIN_PASSWORD_FIELD}    {{.password_field}}
${LOGIN_BUTTON}           {{.login_button}}
${LOGIN_ERROR_MESSAGE}    {{.error_message}}

*** Keywords ***
Input Username
    [Arguments]    ${username}
    [Documentation]    Enter username in the username field
    Wait Until Element Is Visible    ${LOGIN_USERNAME_FIELD}
    Clear Element Text    ${LOGIN_USERNAME_FIELD}
    Input Text    ${LOGIN_USERNAME_FIELD}    ${username}

Input Password
    [Arguments]    ${password}
    [Documentation]    Enter password in the password field
    Wait Until Element Is Visible    ${LOGIN_PASSWORD_FIELD}
    Clear Element Text    ${LOGIN_PASSWORD_FIELD}
    Input Text    ${LOGIN_PASSWORD_FIELD}    ${password}

Click Login Button
    [Documentation]    Click the login button
    Wait Until Element Is Enabled    ${LOGIN_BUTTON}
    Click Button    ${LOGIN_BUTTON}

Login With Credentials
    [Arguments]    ${username}    ${password}
    [Documentation]    Complete login process with given credentials
    Input Username    ${username}
    Input Password    ${password}
    Click Login Button

Verify Error Message
    [Arguments]    ${expected_message}
    [Documentation]    Verify error message is displayed
    Wait Until Element Is Visible    ${LOGIN_ERROR_MESSAGE}    10s
    Element Text Should Be    ${LOGIN_ERROR_MESSAGE}    ${expected_message}
`,

	artifact.KindDataDriven: `*** Settings ***
Library    SeleniumLibrary
Library    DataDriver    {{.test_data_file}}    encoding=utf-8
Test Template    Login Test Template

*** Variables ***
${BROWSER}        Chrome
${BASE_URL}       https://www.appurl.com

# Selector Variables
${USERNAME_FIELD}        {{.username_field}}
${PASSWORD_FIELD}        {{.password_field}}
${LOGIN_BUTTON}          {{.login_button}}
${SUCCESS_INDICATOR}     {{.success_indicator}}
${ERROR_MESSAGE}         {{.error_message}}

*** Test Cases ***
Login Test With ${username} And ${password}
    [Tags]    data-driven    login
    # Test case will be generated for each row in the data file

*** Keywords ***
Login Test Template
    [Arguments]    ${username}    ${password}    ${expected_result}
    [Documentation]    Template for data-driven login tests
    Open Browser    ${BASE_URL}    ${BROWSER}
    Maximize Browser Window
    Input Text    ${USERNAME_FIELD}    ${username}
    Input Text    ${PASSWORD_FIELD}    ${password}
    Click Button    ${LOGIN_BUTTON}
    Run Keyword If    '${expected_result}' == 'success'
    ...    Wait Until Page Contains Element    ${SUCCESS_INDICATOR}    10s
    ...    ELSE
    ...    Wait Until Page Contains Element    ${ERROR_MESSAGE}    10s
    [Teardown]    Close Browser

*** Comments ***
# Create {{.test_data_file}} with columns: username,password,expected_result
# Example content:
# username,password,expected_result
# standard_user,secret_sauce,success
# locked_out_user,secret_sauce,error
# invalid_user,wrong_password,error
`,

	artifact.KindAPIIntegration: `*** Settings ***
Library    SeleniumLibrary
Library    RequestsLibrary
Library    Collections

*** Variables ***
${BASE_URL}         {{.base_url}}
${API_ENDPOINT}     {{.endpoint}}
${BROWSER}          Chrome

*** Test Cases ***
API UI Integration Test
    [Documentation]    Test API and UI integration
    [Tags]    integration    api    ui

    # API Setup and Validation
    Create Session    api_session    ${BASE_URL}
    ${api_response}=    {{.method}} On Session    api_session    ${API_ENDPOINT}
    Status Should Be    200    ${api_response}
    ${response_data}=    Set Variable    ${api_response.json()}

    # UI Validation based on API data
    Open Browser    ${BASE_URL}    ${BROWSER}
    Maximize Browser Window

    # Validate UI reflects API data
    Wait Until Page Contains    ${response_data['title']}    10s
    Page Should Contain    ${response_data['description']}

    [Teardown]    Run Keywords
    ...    Close Browser    AND
    ...    Delete All Sessions

*** Keywords ***
Validate API Response Structure
    [Arguments]    ${response}
    [Documentation]    Validate API response has required fields
    Dictionary Should Contain Key    ${response}    id
    Dictionary Should Contain Key    ${response}    title
    Dictionary Should Contain Key    ${response}    description
`,

	artifact.KindAdvancedKeywords: `*** Settings ***
Library    SeleniumLibrary

*** Keywords ***
# Dropdown/Select Operations
Select Dropdown Option By Label
    [Arguments]    ${locator}    ${label}
    [Documentation]    Select option from dropdown by visible text
    Wait Until Element Is Visible    ${locator}    10s
    Select From List By Label    ${locator}    ${label}

Select Dropdown Option By Value
    [Arguments]    ${locator}    ${value}
    [Documentation]    Select option from dropdown by value
    Wait Until Element Is Visible    ${locator}    10s
    Select From List By Value    ${locator}    ${value}

# Checkbox Operations
Select Checkbox If Not Selected
    [Arguments]    ${locator}
    [Documentation]    Select checkbox only if it's not already selected
    Wait Until Element Is Visible    ${locator}    10s
    ${is_selected}=    Run Keyword And Return Status    Checkbox Should Be Selected    ${locator}
    Run Keyword If    not ${is_selected}    Select Checkbox    ${locator}

Unselect Checkbox If Selected
    [Arguments]    ${locator}
    [Documentation]    Unselect checkbox only if it's currently selected
    Wait Until Element Is Visible    ${locator}    10s
    ${is_selected}=    Run Keyword And Return Status    Checkbox Should Be Selected    ${locator}
    Run Keyword If    ${is_selected}    Unselect Checkbox    ${locator}

# File Upload Operations
Upload File To Element
    [Arguments]    ${locator}    ${file_path}
    [Documentation]    Upload file using file input element
    Wait Until Element Is Visible    ${locator}    10s
    Choose File    ${locator}    ${file_path}

# Alert/Pop-up Operations
Handle Alert And Accept
    [Documentation]    Handle JavaScript alert and accept it
    Alert Should Be Present
    Accept Alert

Handle Alert And Dismiss
    [Documentation]    Handle JavaScript alert and dismiss it
    Alert Should Be Present
    Dismiss Alert

Get Alert Text And Accept
    [Documentation]    Get alert text and accept the alert
    Alert Should Be Present
    ${alert_text}=    Get Alert Message
    Accept Alert
    RETURN    ${alert_text}

# Mouse Operations
Hover Over Element
    [Arguments]    ${locator}
    [Documentation]    Hover mouse over an element
    Wait Until Element Is Visible    ${locator}    10s
    Mouse Over    ${locator}

Double Click On Element
    [Arguments]    ${locator}
    [Documentation]    Double click on an element
    Wait Until Element Is Visible    ${locator}    10s
    Double Click Element    ${locator}

Right Click On Element
    [Arguments]    ${locator}
    [Documentation]    Right click on an element
    Wait Until Element Is Visible    ${locator}    10s
    Open Context Menu    ${locator}

# Scroll Operations
Scroll To Element
    [Arguments]    ${locator}
    [Documentation]    Scroll element into view
    Wait Until Element Is Visible    ${locator}    10s
    Scroll Element Into View    ${locator}

Scroll To Bottom Of Page
    [Documentation]    Scroll to the bottom of the page
    Execute JavaScript    window.scrollTo(0, document.body.scrollHeight)

Scroll To Top Of Page
    [Documentation]    Scroll to the top of the page
    Execute JavaScript    window.scrollTo(0, 0)

# Window/Tab Operations
Switch To New Window
    [Documentation]    Switch to the newly opened window/tab
    ${current_windows}=    Get Window Handles
    ${window_count}=    Get Length    ${current_windows}
    Should Be True    ${window_count} > 1    New window should be opened
    Switch Window    ${current_windows}[-1]

Close Current Window And Switch Back
    [Documentation]    Close current window and switch to previous one
    Close Window
    Switch Window    MAIN

# JavaScript Operations
Execute Custom JavaScript
    [Arguments]    ${javascript_code}
    [Documentation]    Execute custom JavaScript code
    ${result}=    Execute JavaScript    ${javascript_code}
    RETURN    ${result}

Get Element Attribute Value
    [Arguments]    ${locator}    ${attribute}
    [Documentation]    Get attribute value of an element
    Wait Until Element Is Visible    ${locator}    10s
    ${value}=    Get Element Attribute    ${locator}    ${attribute}
    RETURN    ${value}

# Advanced Wait Operations
Wait Until Element Contains Text
    [Arguments]    ${locator}    ${expected_text}    ${timeout}=10s
    [Documentation]    Wait until element contains specific text
    Wait Until Element Is Visible    ${locator}    ${timeout}
    Wait Until Element Contains    ${locator}    ${expected_text}    ${timeout}

Wait Until Page Title Contains
    [Arguments]    ${expected_title}    ${timeout}=10s
    [Documentation]    Wait until page title contains expected text
    Wait Until Title Contains    ${expected_title}    ${timeout}

Wait For Element To Disappear
    [Arguments]    ${locator}    ${timeout}=10s
    [Documentation]    Wait for element to disappear from page
    Wait Until Element Is Not Visible    ${locator}    ${timeout}

# Table Operations
Get Table Cell Text
    [Arguments]    ${table_locator}    ${row}    ${column}
    [Documentation]    Get text from specific table cell
    ${cell_text}=    Get Table Cell    ${table_locator}    ${row}    ${column}
    RETURN    ${cell_text}

Get Table Row Count
    [Arguments]    ${table_locator}
    [Documentation]    Get number of rows in table
    ${row_count}=    Get Element Count    ${table_locator}//tr
    RETURN    ${row_count}

# Form Validation
Verify Field Is Required
    [Arguments]    ${locator}
    [Documentation]    Verify field has required attribute
    ${is_required}=    Get Element Attribute    ${locator}    required
    Should Not Be Empty    ${is_required}    Field should be required

Verify Field Is Disabled
    [Arguments]    ${locator}
    [Documentation]    Verify field is disabled
    Element Should Be Disabled    ${locator}

Verify Field Is Enabled
    [Arguments]    ${locator}
    [Documentation]    Verify field is enabled
    Element Should Be Enabled    ${locator}
`,

	artifact.KindExtendedKeywords: `*** Settings ***
Library    SeleniumLibrary
Library    Collections
Library    String
Library    DateTime

*** Keywords ***
# Screenshot Capabilities
Capture Full Page Screenshot
    [Arguments]    ${filename}=page_screenshot.png
    [Documentation]    Capture screenshot of entire page
    Capture Page Screenshot    ${filename}
    Log    Screenshot saved as: ${filename}

Capture Element Screenshot To File
    [Arguments]    ${locator}    ${filename}=element_screenshot.png
    [Documentation]    Capture screenshot of specific element
    Wait Until Element Is Visible    ${locator}    10s
    Capture Element Screenshot    ${locator}    ${filename}
    Log    Element screenshot saved as: ${filename}

Capture Screenshot With Timestamp
    [Documentation]    Capture screenshot with current timestamp in filename
    ${timestamp}=    Get Current Date    result_format=%Y%m%d_%H%M%S
    ${filename}=    Set Variable    screenshot_${timestamp}.png
    Capture Page Screenshot    ${filename}
    RETURN    ${filename}

Take Screenshot On Failure
    [Documentation]    Take screenshot when test fails (for teardown use)
    ${test_name}=    Get Variable Value    ${TEST_NAME}    unknown_test
    ${timestamp}=    Get Current Date    result_format=%Y%m%d_%H%M%S
    ${filename}=    Set Variable    failure_${test_name}_${timestamp}.png
    Capture Page Screenshot    ${filename}
    Log    Failure screenshot saved: ${filename}

# Text Retrieval Operations
Get Element Text Value
    [Arguments]    ${locator}
    [Documentation]    Get text content from an element
    Wait Until Element Is Visible    ${locator}    10s
    ${text}=    Get Text    ${locator}
    RETURN    ${text}

Get Input Field Value
    [Arguments]    ${locator}
    [Documentation]    Get value from input field
    Wait Until Element Is Visible    ${locator}    10s
    ${value}=    Get Value    ${locator}
    RETURN    ${value}

# Window Management Operations
Switch To Window By Title
    [Arguments]    ${expected_title}
    [Documentation]    Switch to browser window by title
    @{windows}=    Get Window Handles
    FOR    ${window}    IN    @{windows}
        Switch Window    ${window}
        ${title}=    Get Title
        IF    '${title}' == '${expected_title}'
            RETURN
        END
    END
    Fail    Window with title '${expected_title}' not found

Close Other Windows
    [Documentation]    Close all windows except the current one
    @{all_windows}=    Get Window Handles
    ${main_window}=    Get From List    ${all_windows}    0
    FOR    ${window}    IN    @{all_windows}
        IF    '${window}' != '${main_window}'
            Switch Window    ${window}
            Close Window
        END
    END
    Switch Window    ${main_window}

Get Current Window Size
    [Documentation]    Get current window size dimensions
    ${size}=    Get Window Size
    Log    Current window size: ${size}
    RETURN    ${size}

Set Window Dimensions
    [Arguments]    ${width}    ${height}
    [Documentation]    Set window size to specific dimensions
    Set Window Size    ${width}    ${height}
    Log    Window size set to: ${width}x${height}

Restore Window Size
    [Arguments]    ${width}=1024    ${height}=768
    [Documentation]    Restore window to default size
    Set Window Size    ${width}    ${height}
    Maximize Browser Window

# Performance and Logging Operations
Get Page Performance Metrics
    [Documentation]    Get basic page performance metrics using JavaScript
    ${load_time}=    Execute JavaScript    return window.performance.timing.loadEventEnd - window.performance.timing.navigationStart
    ${dom_ready}=    Execute JavaScript    return window.performance.timing.domContentLoadedEventEnd - window.performance.timing.navigationStart
    ${metrics}=    Create Dictionary    load_time=${load_time}    dom_ready=${dom_ready}
    RETURN    ${metrics}

Measure Page Load Time
    [Documentation]    Measure and return page load time in milliseconds
    ${load_time}=    Execute JavaScript    return performance.getEntriesByType('navigation')[0].loadEventEnd - performance.getEntriesByType('navigation')[0].startTime
    Log    Page load time: ${load_time} ms
    RETURN    ${load_time}

Log Performance Metrics
    [Documentation]    Log browser performance metrics
    ${navigation_timing}=    Execute JavaScript    return JSON.stringify(performance.getEntriesByType('navigation')[0]);
    ${paint_timing}=    Execute JavaScript    return JSON.stringify(performance.getEntriesByType('paint'));
    Log    Navigation Timing: ${navigation_timing}
    Log    Paint Timing: ${paint_timing}

Clear Browser Performance Data
    [Documentation]    Clear browser performance timing data
    Execute JavaScript    performance.clearResourceTimings();
    Execute JavaScript    performance.clearMarks();
    Execute JavaScript    performance.clearMeasures();
    Log    Browser performance data cleared

Log Browser Information
    [Documentation]    Log comprehensive browser information
    ${user_agent}=    Execute JavaScript    return navigator.userAgent;
    ${viewport}=    Execute JavaScript    return window.innerWidth + 'x' + window.innerHeight;
    Log    User Agent: ${user_agent}
    Log    Viewport Size: ${viewport}
`,

	artifact.KindPerformanceTest: `*** Settings ***
Library    SeleniumLibrary
Library    Collections
Library    DateTime
Library    OperatingSystem

*** Variables ***
${TEST_URL}    https://www.appurl.com
${PERFORMANCE_THRESHOLD_LOAD}    3000
${PERFORMANCE_THRESHOLD_INTERACTIVE}    2000
${PERFORMANCE_THRESHOLD_PAINT}    1000

*** Test Cases ***
Website Performance Test
    [Documentation]    Comprehensive website performance testing
    [Tags]    performance    load-time    metrics
    ${test_start}=    Get Current Date    result_format=epoch
    Open Browser    ${TEST_URL}    Chrome
    Wait Until Page Does Not Contain    Loading    timeout=30s
    Sleep    2s
    ${metrics}=    Collect Performance Metrics
    Validate Performance Thresholds    ${metrics}
    Generate Performance Report    ${metrics}
    [Teardown]    Close Browser

*** Keywords ***
Collect Performance Metrics
    [Documentation]    Collect navigation, paint, and memory metrics
    ${navigation_timing}=    Execute JavaScript
    ...    var timing = window.performance.timing;
    ...    return {
    ...        'load_complete': timing.loadEventEnd - timing.navigationStart,
    ...        'dom_ready': timing.domContentLoadedEventEnd - timing.navigationStart,
    ...        'first_paint': timing.responseStart - timing.navigationStart
    ...    };
    ${paint_timing}=    Execute JavaScript
    ...    if ('getEntriesByType' in window.performance) {
    ...        var paints = window.performance.getEntriesByType('paint');
    ...        var result = {};
    ...        paints.forEach(function(paint) {
    ...            result[paint.name.replace('-', '_')] = paint.startTime;
    ...        });
    ...        return result;
    ...    }
    ...    return {};
    ${all_metrics}=    Create Dictionary
    Set To Dictionary    ${all_metrics}    navigation=${navigation_timing}
    Set To Dictionary    ${all_metrics}    paint=${paint_timing}
    RETURN    ${all_metrics}

Validate Performance Thresholds
    [Arguments]    ${metrics}
    [Documentation]    Validate performance against thresholds
    ${navigation}=    Get From Dictionary    ${metrics}    navigation
    ${load_time}=    Get From Dictionary    ${navigation}    load_complete
    Should Be True    ${load_time} < ${PERFORMANCE_THRESHOLD_LOAD}
    ...    Page load time (${load_time}ms) exceeds threshold (${PERFORMANCE_THRESHOLD_LOAD}ms)
    ${dom_ready}=    Get From Dictionary    ${navigation}    dom_ready
    Should Be True    ${dom_ready} < ${PERFORMANCE_THRESHOLD_INTERACTIVE}
    ...    DOM ready time (${dom_ready}ms) exceeds threshold (${PERFORMANCE_THRESHOLD_INTERACTIVE}ms)
    ${paint}=    Get From Dictionary    ${metrics}    paint
    ${has_first_paint}=    Run Keyword And Return Status    Dictionary Should Contain Key    ${paint}    first_paint
    IF    ${has_first_paint}
        ${first_paint}=    Get From Dictionary    ${paint}    first_paint
        Should Be True    ${first_paint} < ${PERFORMANCE_THRESHOLD_PAINT}
        ...    First paint time (${first_paint}ms) exceeds threshold (${PERFORMANCE_THRESHOLD_PAINT}ms)
    END

Generate Performance Report
    [Arguments]    ${metrics}
    [Documentation]    Generate detailed performance report
    ${timestamp}=    Get Current Date    result_format=%Y-%m-%d_%H-%M-%S
    ${report_file}=    Set Variable    performance_report_${timestamp}.txt
    ${navigation}=    Get From Dictionary    ${metrics}    navigation
    ${report_content}=    Catenate    SEPARATOR=\n
    ...    PERFORMANCE TEST REPORT
    ...    =========================
    ...    Test URL: ${TEST_URL}
    ...    Test Time: ${timestamp}
    ...    Page Load Complete: ${navigation}[load_complete]ms
    ...    DOM Ready: ${navigation}[dom_ready]ms
    ...    Load Time Threshold: ${PERFORMANCE_THRESHOLD_LOAD}ms
    ...    Interactive Threshold: ${PERFORMANCE_THRESHOLD_INTERACTIVE}ms
    ...    Paint Threshold: ${PERFORMANCE_THRESHOLD_PAINT}ms
    Create File    ${report_file}    ${report_content}
    Log    Performance report saved to: ${report_file}
`,
}
